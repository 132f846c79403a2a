package sinks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Defaults
const MaxReconnectsDefault = -1
const ReconnectWaitDefault = 1 * time.Second
const ReconnectJitterDefault = 5 * time.Second
const ConnectionTimeoutDefault = 10 * time.Second
const RetryDelayDefault = 1 * time.Second

type MaxRetriesError struct{}

func (m MaxRetriesError) Error() string {
	return "maximum retries reached"
}

func fieldsFromConn(c *nats.Conn) log.Fields {
	fields := log.Fields{}

	if c != nil {
		fields["ovm.nats.address"] = c.ConnectedAddr()
		fields["ovm.nats.reconnects"] = c.Reconnects
		fields["ovm.nats.serverId"] = c.ConnectedServerId()
		fields["ovm.nats.url"] = c.ConnectedUrl()

		if c.LastError() != nil {
			fields["ovm.nats.lastError"] = c.LastError()
		}
	}

	return fields
}

var DisconnectErrHandlerDefault = func(c *nats.Conn, err error) {
	fields := fieldsFromConn(c)

	if err != nil {
		log.WithError(err).WithFields(fields).Error("NATS disconnected")
	} else {
		log.WithFields(fields).Debug("NATS disconnected")
	}
}

var ReconnectHandlerDefault = func(c *nats.Conn) {
	log.WithFields(fieldsFromConn(c)).Debug("NATS reconnected")
}

var ClosedHandlerDefault = func(c *nats.Conn) {
	log.WithFields(fieldsFromConn(c)).Debug("NATS connection closed")
}

var ErrorHandlerDefault = func(c *nats.Conn, s *nats.Subscription, err error) {
	fields := fieldsFromConn(c)

	if s != nil {
		fields["ovm.nats.subject"] = s.Subject
	}

	log.WithFields(fields).WithError(err).Error("NATS error")
}

// NATSOptions configures the connection used by the NATS sink
type NATSOptions struct {
	Servers              []string            // List of server to connect to
	ConnectionName       string              // The client name
	MaxReconnects        int                 // The maximum number of reconnect attempts
	ConnectionTimeout    time.Duration       // The timeout for Dial on a connection
	ReconnectWait        time.Duration       // Wait time between reconnect attempts
	ReconnectJitter      time.Duration       // The upper bound of a random delay added ReconnectWait
	DisconnectErrHandler nats.ConnErrHandler // Runs when NATS is disconnected
	ReconnectHandler     nats.ConnHandler    // Runs when NATS has successfully reconnected
	ClosedHandler        nats.ConnHandler    // Runs when NATS will no longer be connected
	ErrorHandler         nats.ErrHandler     // Runs when there is a NATS error
	AdditionalOptions    []nats.Option       // Addition options to pass to the connection
	NumRetries           int                 // How many times to retry connecting initially, use -1 to retry indefinitely
	RetryDelay           time.Duration       // Initial delay between connection attempts, grows exponentially
}

// ToNatsOptions Converts the struct to connection string and a set of NATS
// options
func (o NATSOptions) ToNatsOptions() (string, []nats.Option) {
	serverString := strings.Join(o.Servers, ",")
	options := []nats.Option{}

	if o.ConnectionName != "" {
		options = append(options, nats.Name(o.ConnectionName))
	}

	if o.MaxReconnects != 0 {
		options = append(options, nats.MaxReconnects(o.MaxReconnects))
	} else {
		options = append(options, nats.MaxReconnects(MaxReconnectsDefault))
	}

	if o.ConnectionTimeout != 0 {
		options = append(options, nats.Timeout(o.ConnectionTimeout))
	} else {
		options = append(options, nats.Timeout(ConnectionTimeoutDefault))
	}

	if o.ReconnectWait != 0 {
		options = append(options, nats.ReconnectWait(o.ReconnectWait))
	} else {
		options = append(options, nats.ReconnectWait(ReconnectWaitDefault))
	}

	if o.ReconnectJitter != 0 {
		options = append(options, nats.ReconnectJitter(o.ReconnectJitter, o.ReconnectJitter))
	} else {
		options = append(options, nats.ReconnectJitter(ReconnectJitterDefault, ReconnectJitterDefault))
	}

	if o.DisconnectErrHandler != nil {
		options = append(options, nats.DisconnectErrHandler(o.DisconnectErrHandler))
	} else {
		options = append(options, nats.DisconnectErrHandler(DisconnectErrHandlerDefault))
	}

	if o.ReconnectHandler != nil {
		options = append(options, nats.ReconnectHandler(o.ReconnectHandler))
	} else {
		options = append(options, nats.ReconnectHandler(ReconnectHandlerDefault))
	}

	if o.ClosedHandler != nil {
		options = append(options, nats.ClosedHandler(o.ClosedHandler))
	} else {
		options = append(options, nats.ClosedHandler(ClosedHandlerDefault))
	}

	if o.ErrorHandler != nil {
		options = append(options, nats.ErrorHandler(o.ErrorHandler))
	} else {
		options = append(options, nats.ErrorHandler(ErrorHandlerDefault))
	}

	options = append(options, o.AdditionalOptions...)

	return serverString, options
}

// Connect connects to NATS using the supplied options, retrying with an
// exponential backoff while the servers are unavailable
func (o NATSOptions) Connect(ctx context.Context) (*nats.Conn, error) {
	servers, opts := o.ToNatsOptions()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.RetryDelay
	if b.InitialInterval == 0 {
		b.InitialInterval = RetryDelayDefault
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WithContext(ctx).WithError(err).WithFields(log.Fields{
				"ovm.nats.servers":   servers,
				"ovm.nats.nextRetry": next.String(),
			}).Error("Error connecting to NATS")
		}),
	}

	if o.NumRetries >= 0 {
		retryOpts = append(retryOpts, backoff.WithMaxTries(uint(o.NumRetries)+1))
	} else {
		retryOpts = append(retryOpts, backoff.WithMaxElapsedTime(0))
	}

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.nats.servers": servers,
	}).Info("NATS connecting")

	nc, err := backoff.Retry(ctx, func() (*nats.Conn, error) {
		return nats.Connect(servers, opts...)
	}, retryOpts...)
	if err != nil {
		return nil, errors.Join(err, MaxRetriesError{})
	}

	log.WithContext(ctx).WithFields(fieldsFromConn(nc)).Info("NATS connected")

	return nc, nil
}
