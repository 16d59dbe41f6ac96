// Package uid generates run identifiers that correlate the log records,
// the payout notification and the printed result of one withdrawal run.
package uid

import (
	"context"
	"fmt"
	"strings"
)

// Strategy defines which UID generation algorithm to use.
type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the UID generator.
type Options struct {
	// Strategy selects the generation algorithm. Empty means UUIDv7.
	Strategy Strategy

	// NodeID identifies the host running the job (Snowflake only).
	// Valid range: 0–1023.
	NodeID int64
}

// UIDGenerator is the interface consumers depend on for generating run identifiers.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// ParseStrategy maps a config value onto a Strategy, accepting "uuid" as UUIDv7.
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "uuid", string(StrategyUUIDv7):
		return StrategyUUIDv7, nil
	case string(StrategySnowflake):
		return StrategySnowflake, nil
	default:
		return "", fmt.Errorf("uid: unknown strategy %q", value)
	}
}

// New creates a UIDGenerator based on the provided options.
func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}
