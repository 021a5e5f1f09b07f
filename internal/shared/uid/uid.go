// Package uid generates unique identifiers for newly created records.
package uid

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Strategy defines which UID generation algorithm to use.
type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the UID generator.
type Options struct {
	Strategy Strategy

	// NodeID identifies this node for Snowflake IDs. Valid range: 0-1023.
	NodeID int64
}

// UIDGenerator is the interface consumers depend on for generating unique identifiers.
// Implementations must be safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

var (
	_ UIDGenerator = (*snowflakeGenerator)(nil)
	_ UIDGenerator = uuidv7Generator{}
)

// ParseStrategy maps a config value onto a Strategy. Empty selects UUIDv7.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyUUIDv7:
		return StrategyUUIDv7, nil
	case StrategySnowflake:
		return StrategySnowflake, nil
	default:
		return "", fmt.Errorf("uid: unknown strategy %q", value)
	}
}

// New creates a UIDGenerator based on the provided options.
func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		node, err := snowflake.NewNode(opts.NodeID)
		if err != nil {
			return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
		}
		return &snowflakeGenerator{node: node}, nil
	case StrategyUUIDv7:
		return uuidv7Generator{}, nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

// snowflake.Node serializes Generate internally.
type snowflakeGenerator struct {
	node *snowflake.Node
}

func (g *snowflakeGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.node.Generate().String(), nil
}

type uuidv7Generator struct{}

func (uuidv7Generator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
