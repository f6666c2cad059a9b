// Package vacation runs the two display name flows: going on vacation and coming back.
package vacation

import (
	"context"
	"fmt"
	"log"

	"github.com/hal9000y/slack-vacation/internal/marker"
)

type profileReader interface {
	DisplayName(ctx context.Context) (string, error)
}

type profileWriter interface {
	SetDisplayName(ctx context.Context, name string) error
}

// NewService creates a Service reading from reader and writing to writer.
func NewService(reader profileReader, writer profileWriter) *Service {
	return &Service{
		reader: reader,
		writer: writer,
	}
}

// Service toggles the vacation marker on the caller's display name.
type Service struct {
	reader profileReader
	writer profileWriter
}

// Enter appends a marker for date and returns the name that was written.
func (s *Service) Enter(ctx context.Context, date string) (string, error) {
	return s.update(ctx, func(current string) string {
		return marker.Append(current, date)
	})
}

// Return strips the marker and returns the name that was written.
func (s *Service) Return(ctx context.Context) (string, error) {
	return s.update(ctx, marker.Strip)
}

func (s *Service) update(ctx context.Context, transform func(string) string) (string, error) {
	current, err := s.reader.DisplayName(ctx)
	if err != nil {
		return "", fmt.Errorf("reader.DisplayName failed: %w", err)
	}

	next := transform(current)
	log.Printf("Changing display name %q -> %q", current, next)

	if err := s.writer.SetDisplayName(ctx, next); err != nil {
		return "", fmt.Errorf("writer.SetDisplayName failed: %w", err)
	}

	return next, nil
}
