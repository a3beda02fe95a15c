package history

import (
	"fmt"
	"time"

	"github.com/kaltdl/kaltdl/command"
)

// Record is a generated download command kept for later reference.
// The captured stream URL is not a field of its own; it only survives inside Command.
type Record struct {
	EntryID  string    `json:"entry_id"`
	Title    string    `json:"title"`
	Filename string    `json:"filename"`
	Command  string    `json:"command"`
	Count    int       `json:"count"`
	SavedAt  time.Time `json:"saved_at"`
}

func (r *Record) encode() string {
	return r.Filename
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Filename, r.SavedAt.Format(time.DateTime))
}

func newRecord(result command.Result, title string, now time.Time) *Record {
	return &Record{
		EntryID:  result.EntryID,
		Title:    title,
		Filename: result.Filename,
		Command:  result.Command,
		Count:    1,
		SavedAt:  now,
	}
}
