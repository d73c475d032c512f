// Package rolls defines the roll audit store consumed by the roller cog.
package rolls

import (
	"context"
	"time"
)

// Record is one evaluated dice command, kept for per-author statistics.
type Record struct {
	ID       string
	Author   string
	Notation string
	// Rolls holds the final attempt's face values in generation order.
	Rolls []int
	Total int
	// Attempts is 1 for plain rolls and the attempt count for roll-until.
	Attempts  int
	Succeeded bool
	CreatedAt time.Time
}

// Stats aggregates one author's recorded rolls.
type Stats struct {
	Author    string
	RollCount int
	BestTotal int
	LastRoll  time.Time
}

// Store persists roll records.
type Store interface {
	AppendRoll(ctx context.Context, record Record) error
	AuthorStats(ctx context.Context, author string) (Stats, error)
}
