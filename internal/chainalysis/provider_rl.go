package chainalysis

import (
	"context"
	"encoding/json"
)

// RLProvider wraps a Provider with a Limiter.
type RLProvider struct {
	p Provider
	l Limiter
}

func WrapWithLimiter(p Provider, l Limiter) Provider { return RLProvider{p: p, l: l} }

func (r RLProvider) Register(ctx context.Context, address string) error {
	if err := r.l.Wait(ctx); err != nil {
		return err
	}
	return r.p.Register(ctx, address)
}

func (r RLProvider) Entity(ctx context.Context, address string) (json.RawMessage, error) {
	if err := r.l.Wait(ctx); err != nil {
		return nil, err
	}
	return r.p.Entity(ctx, address)
}
