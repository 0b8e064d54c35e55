package chainalysis

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestNopLimiterUnlimited(t *testing.T) {
	l := NewLimiter(0)
	for i := 0; i < 100; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLimiterHonorsCancellation(t *testing.T) {
	l := NewLimiter(1) // 1 req/s: the second Wait would block ~1s
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

type fakeProvider struct {
	registered []string
	fetched    []string
}

func (f *fakeProvider) Register(ctx context.Context, address string) error {
	f.registered = append(f.registered, address)
	return nil
}

func (f *fakeProvider) Entity(ctx context.Context, address string) (json.RawMessage, error) {
	f.fetched = append(f.fetched, address)
	return json.RawMessage(`{}`), nil
}

func TestRLProviderForwards(t *testing.T) {
	fake := &fakeProvider{}
	p := WrapWithLimiter(fake, NewLimiter(0))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Register(ctx, "a1"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Entity(ctx, "a1"); err != nil {
		t.Fatal(err)
	}
	if len(fake.registered) != 1 || len(fake.fetched) != 1 {
		t.Fatalf("calls not forwarded: %+v", fake)
	}
}

func TestRLProviderBlocksOnCancelledContext(t *testing.T) {
	fake := &fakeProvider{}
	p := WrapWithLimiter(fake, NewLimiter(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Register(ctx, "a1"); err == nil {
		t.Fatal("expected limiter to surface context error")
	}
	if len(fake.registered) != 0 {
		t.Fatal("call must not reach the provider after cancellation")
	}
}
