package discovery

import (
	"context"
	"errors"
	"io"
	"reflect"

	log "github.com/sirupsen/logrus"
)

// Module enumerates the resources of a single cloud service for a project.
//
// Discover must not return until it has finished emitting. Provider failures
// are reported through the reporter and never escape the module, so that an
// outage of one service does not affect the others. Discover may be called
// concurrently with other modules' Discover methods but is called at most
// once at a time per scan
type Module interface {
	// Service is the stable name of the service, e.g. "logging". It is used
	// as the first half of the classification path
	Service() string

	Discover(ctx context.Context, projectID string, session *Session, emitter Emitter, reporter ErrorReporter)
}

// Connector opens a provider client. Clients are closed by WithClient once
// they are no longer needed
type Connector[C io.Closer] func(ctx context.Context) (C, error)

var errNilClient = errors.New("connector returned a nil client")

// WithClient opens a client with the connector, passes it to fn and closes it
// on every exit path, including panics. A failure to connect is returned as a
// connection error, errors from fn are returned unchanged
func WithClient[C io.Closer](ctx context.Context, connect Connector[C], fn func(client C) error) error {
	if connect == nil {
		return ConnectionError(errors.New("no connector configured"))
	}

	client, err := connect(ctx)
	if err != nil {
		return ConnectionError(err)
	}

	if isNil(client) {
		return ConnectionError(errNilClient)
	}

	defer func() {
		if err := client.Close(); err != nil {
			log.WithContext(ctx).WithError(err).Debug("Error closing provider client")
		}
	}()

	return fn(client)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
