package chainalysis

import (
	"context"
	"encoding/json"
)

// Provider defines the risk API surface the screener needs. Concrete
// adapters satisfy this interface; the screening loop never touches HTTP
// directly.
type Provider interface {
	// Register submits an address for scoring. It must be called before
	// Entity for addresses the service has not seen.
	Register(ctx context.Context, address string) error

	// Entity fetches the scored document for an address. The body is
	// returned raw so the caller can persist it verbatim before decoding.
	Entity(ctx context.Context, address string) (json.RawMessage, error)
}
