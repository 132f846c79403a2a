package tracing

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
)

// HeaderCarrier adapts nats.Header to otel's TextMapCarrier
type HeaderCarrier struct {
	headers nats.Header
}

// NewNatsHeaderCarrier creates a new HeaderCarrier.
func NewNatsHeaderCarrier(h nats.Header) *HeaderCarrier {
	return &HeaderCarrier{
		headers: h,
	}
}

func (c *HeaderCarrier) Get(key string) string {
	return c.headers.Get(key)
}

func (c *HeaderCarrier) Set(key, value string) {
	c.headers.Set(key, value)
}

func (c *HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for key := range c.headers {
		keys = append(keys, key)
	}
	return keys
}

// InjectNatsHeaders writes the trace context of ctx into the message headers
// so that consumers can continue the trace
func InjectNatsHeaders(ctx context.Context, msg *nats.Msg) {
	if msg.Header == nil {
		msg.Header = make(nats.Header)
	}

	otel.GetTextMapPropagator().Inject(ctx, NewNatsHeaderCarrier(msg.Header))
}

// ExtractNatsHeaders returns ctx with the trace context found in the message
// headers
func ExtractNatsHeaders(ctx context.Context, msg *nats.Msg) context.Context {
	if msg.Header == nil {
		return ctx
	}

	return otel.GetTextMapPropagator().Extract(ctx, NewNatsHeaderCarrier(msg.Header))
}
