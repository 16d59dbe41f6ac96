package jwt

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const (
	StrategyHMAC Strategy = "hmac"
)

// Options configures the token signer.
type Options struct {
	// Strategy selects the signing algorithm family.
	Strategy Strategy

	// Secret is the key shared with the payout service. Required for StrategyHMAC.
	Secret []byte

	// Algorithm: "HS256" (default), "HS384", "HS512".
	Algorithm string

	// Issuer sets the default "iss" claim on generated tokens.
	Issuer string

	// TTL determines the "exp" claim. Zero means tokens do not expire.
	TTL time.Duration
}

// Claims are the registered claims plus the payout fields a receiver can
// check against the request body.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	ID        string

	Amount          string
	TransactionHash string
}

// Signer creates signed JWT tokens. The payout service verifies them with
// the same shared secret. Implementations must be safe for concurrent use.
type Signer interface {
	Sign(ctx context.Context, claims Claims) (string, error)
}

// New creates a Signer based on the provided options.
func New(opts Options) (Signer, error) {
	switch opts.Strategy {
	case StrategyHMAC, "":
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
