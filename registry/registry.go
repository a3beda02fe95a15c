// Package registry keeps the mapping from video entry IDs to the stream URLs observed for them.
//
// A Registry lives as long as the browser session that feeds it. Entries are never evicted.
package registry

import (
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/entryid"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Observation is a captured stream URL together with how it was seen.
type Observation struct {
	URL      string    `json:"url"`
	Strength Strength  `json:"-"`
	SeenAt   time.Time `json:"seenAt"`
}

// Registry maps entry IDs to stream URLs. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Observation
	hosts   []string
	now     func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithHosts restricts Observe to request hosts matching one of the glob patterns.
// A pattern "*.example.com" also matches "example.com" itself.
func WithHosts(patterns ...string) Option {
	return func(r *Registry) {
		r.hosts = lo.Compact(lo.Map(patterns, func(p string, _ int) string {
			return strings.ToLower(strings.TrimSpace(p))
		}))
	}
}

// WithClock replaces time.Now for SeenAt stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Observation),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordObservation associates url with entryID.
// A Primary observation always replaces the current association; a Fallback one
// is only stored when nothing is associated yet. It reports whether the mapping changed.
func (r *Registry) RecordObservation(entryID, url string, strength Strength) bool {
	if entryID == "" || url == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entryID]; exists && strength != Primary {
		return false
	}

	r.entries[entryID] = Observation{URL: url, Strength: strength, SeenAt: r.now()}
	return true
}

// Lookup returns the stream URL associated with entryID.
func (r *Registry) Lookup(entryID string) mo.Option[string] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if obs, ok := r.entries[entryID]; ok {
		return mo.Some(obs.URL)
	}
	return mo.None[string]()
}

// Observation returns the full record for entryID.
func (r *Registry) Observation(entryID string) mo.Option[Observation] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if obs, ok := r.entries[entryID]; ok {
		return mo.Some(obs)
	}
	return mo.None[Observation]()
}

// Snapshot returns a copy of every entry ID to stream URL association.
func (r *Registry) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.MapValues(r.entries, func(obs Observation, _ string) string {
		return obs.URL
	})
}

// Len returns the number of associations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Observe handles a candidate request URL seen by the network observer.
// URLs that are not stream manifests, carry no entry ID, or come from a host outside
// the allow-list are ignored. It returns the entry ID when the registry changed.
func (r *Registry) Observe(rawURL string, strength Strength) mo.Option[string] {
	if !r.IsCandidate(rawURL) || !r.allowedHost(rawURL) {
		return mo.None[string]()
	}

	id, ok := entryid.FromManifest(rawURL).Get()
	if !ok {
		return mo.None[string]()
	}

	if !r.RecordObservation(id, rawURL, strength) {
		return mo.None[string]()
	}
	return mo.Some(id)
}

// IsCandidate reports whether rawURL references a stream manifest and an entry ID.
func (r *Registry) IsCandidate(rawURL string) bool {
	isManifest := strings.Contains(rawURL, constant.ManifestExtension) ||
		strings.Contains(rawURL, constant.ManifestEndpoint)

	return isManifest && entryid.Has(rawURL)
}

func (r *Registry) allowedHost(rawURL string) bool {
	if len(r.hosts) == 0 {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())

	return lo.SomeBy(r.hosts, func(pattern string) bool {
		if matched, _ := path.Match(pattern, host); matched {
			return true
		}
		return strings.HasPrefix(pattern, "*.") && host == pattern[2:]
	})
}
