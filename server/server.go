// Package server is the local HTTP bridge between the browser extension and a capture session.
//
// The extension reports manifest requests and player embeds as it sees them and asks for
// download commands when the user clicks a button.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/history"
	"github.com/kaltdl/kaltdl/log"
	"github.com/kaltdl/kaltdl/registry"
	"github.com/kaltdl/kaltdl/session"
	"github.com/samber/lo"
)

const (
	maxBodySize     = 64 << 10
	shutdownTimeout = 5 * time.Second
)

// Server serves one session to the extension.
type Server struct {
	session *session.Session
	token   string
	sink    command.Sink
	now     func() time.Time
	port    int
}

// Option configures a Server.
type Option func(*Server)

// WithSink delivers every generated command to sink as well as returning it.
func WithSink(sink command.Sink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithClock replaces time.Now for filename dates.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithPort sets the port reported by /health.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// New returns a Server for sess guarded by token.
func New(sess *session.Session, token string, opts ...Option) *Server {
	s := &Server{
		session: sess,
		token:   token,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed, authenticated handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /observe", s.handleObserve)
	mux.HandleFunc("POST /embed", s.handleEmbed)
	mux.HandleFunc("GET /embeds", s.handleEmbeds)
	mux.HandleFunc("GET /video", s.handleVideo)
	mux.HandleFunc("GET /urls", s.handleURLs)
	mux.HandleFunc("POST /command", s.handleCommand)

	// cors is outermost so 401 responses carry the headers too
	return cors(authenticate(s.token, mux))
}

// Serve answers requests on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down bridge")
	return srv.Shutdown(shutdownCtx)
}

type observeRequest struct {
	URL   string `json:"url"`
	Phase string `json:"phase"`
}

type embedRequest struct {
	Src string `json:"src"`
}

type commandRequest struct {
	EntryID string `json:"entryId"`
	Title   string `json:"title"`
}

type commandResponse struct {
	EntryID  string `json:"entryId"`
	Filename string `json:"filename"`
	Command  string `json:"command"`
	Copied   bool   `json:"copied"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"port":   s.port,
	})
}

func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	var req observeRequest
	if !decode(w, r, &req) {
		return
	}

	phase, err := registry.ParseStrength(req.Phase)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, captured := s.session.OnCandidateRequest(req.URL, phase).Get()
	writeJSON(w, http.StatusOK, map[string]any{
		"captured": captured,
		"entryId":  nullable(id, captured),
	})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if !decode(w, r, &req) {
		return
	}

	id, err := s.session.OnEmbedDiscovered(req.Src)
	switch {
	case errors.Is(err, session.ErrMalformedReference):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, session.ErrDuplicateEmbed):
		writeJSON(w, http.StatusOK, map[string]any{"entryId": id, "new": false})
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]any{"entryId": id, "new": true})
	}
}

func (s *Server) handleEmbeds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Embeds())
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	entryID := r.URL.Query().Get("entryId")
	if entryID == "" {
		writeError(w, http.StatusBadRequest, "missing entryId")
		return
	}

	url, ok := s.session.Resolve(entryID).Get()
	writeJSON(w, http.StatusOK, map[string]any{"url": nullable(url, ok)})
}

func (s *Server) handleURLs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if !decode(w, r, &req) {
		return
	}
	if req.EntryID == "" {
		writeError(w, http.StatusBadRequest, "missing entryId")
		return
	}

	result, err := s.session.Request(req.EntryID, req.Title, s.now())
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, session.ErrNotFound.Error())
		return
	case errors.Is(err, command.ErrUnsafeInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := history.Save(result, req.Title); err != nil {
		log.Entry(result.EntryID).Warnf("could not save history: %s", err)
	}

	copied := false
	if s.sink != nil {
		if err := s.sink.Deliver(r.Context(), result); err != nil {
			log.Entry(result.EntryID).Warnf("could not deliver command: %s", err)
		} else {
			copied = true
		}
	}

	writeJSON(w, http.StatusOK, commandResponse{
		EntryID:  result.EntryID,
		Filename: result.Filename,
		Command:  result.Command,
		Copied:   copied,
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		return false
	}
	return true
}

func nullable(s string, ok bool) *string {
	return lo.Ternary(ok, &s, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("failed to encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
