package discovery

import "context"

// Emitter is the destination for discovered resources. Emit is fire and
// forget: the emitter is responsible for handling its own failures.
// Implementations must be safe for concurrent use since modules run in
// parallel
type Emitter interface {
	Emit(ctx context.Context, envelope *VersionedEnvelope)
}

// EmitterFunc adapts a function to the Emitter interface. The function must be
// safe for concurrent use
type EmitterFunc func(ctx context.Context, envelope *VersionedEnvelope)

func (f EmitterFunc) Emit(ctx context.Context, envelope *VersionedEnvelope) {
	f(ctx, envelope)
}
