// Package session ties stream capture, embed discovery and command generation together for one browsing session.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/entryid"
	"github.com/kaltdl/kaltdl/log"
	"github.com/kaltdl/kaltdl/naming"
	"github.com/kaltdl/kaltdl/registry"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// Session owns the stream registry of a single browsing session. Create one per session;
// it is safe for concurrent use.
type Session struct {
	registry *registry.Registry
	names    *naming.Generator
	command  command.Options

	mu        sync.Mutex
	processed map[string]string
	embeds    []string
}

// New returns an empty Session.
func New(opts Options) *Session {
	return &Session{
		registry:  registry.New(registry.WithHosts(opts.Hosts...)),
		names:     naming.NewGenerator(opts.Naming),
		command:   opts.Command,
		processed: make(map[string]string),
	}
}

// OnCandidateRequest feeds a network request URL to the registry. The phase says whether the
// request was seen before it was sent (Primary) or after it completed (Fallback).
// It returns the entry ID when the registry changed.
func (s *Session) OnCandidateRequest(url string, phase registry.Strength) mo.Option[string] {
	id := s.registry.Observe(url, phase)
	if captured, ok := id.Get(); ok {
		log.WithFields(logrus.Fields{"entry": captured, "phase": phase.String()}).Debugf("captured %s", url)
	}
	return id
}

// OnEmbedDiscovered registers a newly found player embed. reference is whatever locates the
// player, typically its iframe src. A reference seen before yields its entry ID with ErrDuplicateEmbed.
func (s *Session) OnEmbedDiscovered(reference string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, seen := s.processed[reference]; seen {
		return id, ErrDuplicateEmbed
	}

	id, ok := entryid.Extract(reference).Get()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformedReference, reference)
	}

	s.processed[reference] = id
	if !lo.Contains(s.embeds, id) {
		s.embeds = append(s.embeds, id)
		log.Entry(id).Info("embed discovered")
	}

	return id, nil
}

// Resolve returns the stream URL captured for entryID.
func (s *Session) Resolve(entryID string) mo.Option[string] {
	return s.registry.Lookup(entryID)
}

// Request produces the filename and download command for entryID.
// It fails with ErrNotFound until a stream for the entry has been captured.
func (s *Session) Request(entryID, pageTitle string, today time.Time) (command.Result, error) {
	streamURL, ok := s.registry.Lookup(entryID).Get()
	if !ok {
		log.Entry(entryID).Info("no stream captured yet")
		return command.Result{}, fmt.Errorf("%w: entry %s", ErrNotFound, entryID)
	}

	filename := s.names.Name(entryID, pageTitle, streamURL, today)

	cmd, err := command.Build(streamURL, filename, s.command)
	if err != nil {
		log.Entry(entryID).Warnf("refusing to build command: %s", err)
		return command.Result{}, err
	}

	return command.Result{
		EntryID:   entryID,
		StreamURL: streamURL,
		Filename:  filename,
		Command:   cmd,
	}, nil
}

// Embeds lists discovered entry IDs in discovery order.
func (s *Session) Embeds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.embeds...)
}

// Snapshot returns every captured entry ID with its stream URL.
func (s *Session) Snapshot() map[string]string {
	return s.registry.Snapshot()
}
