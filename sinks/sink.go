// Package sinks contains the destinations discovered resources are written
// to. Every sink is a discovery.Emitter that is safe for concurrent use.
// Failures to write are logged by the sink and never returned to the
// discovery modules
package sinks

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/overmindtech/harvester/discovery"
)

// Sink is an emitter holding resources that must be released once the scan
// has finished
type Sink interface {
	discovery.Emitter
	io.Closer
}

// Multi fans every envelope out to all of its sinks in order
type Multi []Sink

func (m Multi) Emit(ctx context.Context, envelope *discovery.VersionedEnvelope) {
	for _, s := range m {
		s.Emit(ctx, envelope)
	}
}

// Close closes every sink, returning all errors
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// routingKey turns a classification path into a dotted key, e.g.
// ["logging:sink"] becomes "logging.sink"
func routingKey(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, strings.ReplaceAll(p, ":", "."))
	}

	return strings.Join(parts, ".")
}
