package command

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Result is a fully resolved download: where the stream lives, what to call it and how to fetch it.
type Result struct {
	EntryID   string `json:"entryId"`
	StreamURL string `json:"url"`
	Filename  string `json:"filename"`
	Command   string `json:"command"`
}

// Sink hands a generated command to the user.
type Sink interface {
	Deliver(ctx context.Context, result Result) error
}

// ClipboardSink copies the command to the system clipboard.
type ClipboardSink struct{}

func (ClipboardSink) Deliver(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}

	return clipboard.WriteAll(result.Command)
}

// WriterSink prints the command, one per line.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(s.W, result.Command)
	return err
}

// Sinks delivers to each sink in order and stops at the first failure.
type Sinks []Sink

func (s Sinks) Deliver(ctx context.Context, result Result) error {
	for _, sink := range s {
		if err := sink.Deliver(ctx, result); err != nil {
			return err
		}
	}
	return nil
}
