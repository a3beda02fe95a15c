// Package history remembers the download commands generated so far.
//
// Only results are stored. The registry of captured stream URLs lives in the session and is
// gone when it ends; a saved command still carries the URL it downloads from, so turn
// history.save off when manifest URLs hold session tokens you do not want on disk.
package history

import (
	"strings"
	"time"

	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var cacher = filesystem.NewCache[map[string]*Record](where.History(), 0)

// Get returns every saved record keyed by filename.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save stores a generated result. Regenerating the same filename refreshes the record
// and bumps its count. It does nothing while history.save is off.
func Save(result command.Result, title string) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	record := newRecord(result, title, time.Now())
	if existing, ok := saved[record.encode()]; ok {
		record.Count += existing.Count
	}
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove deletes the record for filename.
func Remove(filename string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, filename)
	return cacher.Set(saved)
}

// Search returns records whose filename or title fuzzily contains query, newest first.
// An empty query returns everything.
func Search(query string) ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	records := lo.Filter(lo.Values(saved), func(r *Record, _ int) bool {
		return query == "" ||
			fuzzy.MatchNormalizedFold(query, r.Filename) ||
			fuzzy.MatchNormalizedFold(query, r.Title)
	})

	slices.SortFunc(records, func(a, b *Record) int {
		return b.SavedAt.Compare(a.SavedAt)
	})

	return records, nil
}
