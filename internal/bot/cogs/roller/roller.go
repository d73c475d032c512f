// Package roller provides the dice commands backed by the dice engine.
package roller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/rankaisija/internal/bot"
	"github.com/louisbranch/rankaisija/internal/dice"
	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
	"github.com/louisbranch/rankaisija/internal/platform/id"
	"github.com/louisbranch/rankaisija/internal/random"
	"github.com/louisbranch/rankaisija/internal/storage/rolls"
)

// DefaultMaxAttempts bounds a rolluntil sequence when no limit is configured.
const DefaultMaxAttempts = 100

// defaultNotation is rolled when the roll command gets no arguments.
const defaultNotation = "1d6"

// defaultNumberLimit is the upper bound for the number command.
const defaultNumberLimit = 100

// shownAttempts caps how many attempt totals a rolluntil reply lists.
const shownAttempts = 10

// Config wires the roller cog.
type Config struct {
	// MaxAttempts bounds rolluntil sequences; values below 1 fall back to
	// DefaultMaxAttempts.
	MaxAttempts int
	// Store records executed rolls for the stats command. Optional: a nil
	// store disables auditing and stats, never rolling itself.
	Store rolls.Store
}

// Cog holds the roller command set.
type Cog struct {
	maxAttempts int
	store       rolls.Store
	seedFunc    func() (int64, error)
	newSource   func(seed int64) dice.Source
	clock       func() time.Time
}

// New creates the roller cog.
func New(cfg Config) *Cog {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Cog{
		maxAttempts: maxAttempts,
		store:       cfg.Store,
		seedFunc:    random.NewSeed,
		newSource:   dice.NewSource,
		clock:       time.Now,
	}
}

// Commands returns the roller cog's commands.
func (c *Cog) Commands() []bot.Command {
	return []bot.Command{
		{
			Name:    "roll",
			Aliases: []string{"noppa"},
			Usage:   "roll [notation]",
			Run:     c.roll,
		},
		{
			Name:    "rolluntil",
			Aliases: []string{"kunnes"},
			Usage:   "rolluntil <notation> <condition>",
			Run:     c.rollUntil,
		},
		{
			Name:    "number",
			Aliases: []string{"luku"},
			Usage:   "number [max]",
			Run:     c.number,
		},
		{
			Name:    "stats",
			Aliases: []string{"tilastot"},
			Run:     c.stats,
		},
	}
}

func (c *Cog) roll(ctx context.Context, inv bot.Invocation) error {
	notation := defaultNotation
	if len(inv.Args) > 0 {
		notation = inv.Args[0]
	}

	expr, err := dice.Parse(notation)
	if err != nil {
		return mapDiceError(err)
	}

	src, err := c.source()
	if err != nil {
		return err
	}

	result := dice.Roll(expr, src)
	c.record(ctx, inv.Author, expr, result, 1, true)
	return inv.Replier.Reply(ctx, fmt.Sprintf("%s: %v = %d", expr, result.Rolls, result.Total))
}

func (c *Cog) rollUntil(ctx context.Context, inv bot.Invocation) error {
	if len(inv.Args) < 2 {
		return conditionError("")
	}

	expr, err := dice.Parse(inv.Args[0])
	if err != nil {
		return mapDiceError(err)
	}

	condition, err := compileCondition(strings.Join(inv.Args[1:], " "))
	if err != nil {
		return err
	}

	src, err := c.source()
	if err != nil {
		return err
	}

	seq, err := dice.RollUntil(expr, condition, src, c.maxAttempts)
	if err != nil {
		return mapDiceError(err)
	}

	c.record(ctx, inv.Author, expr, seq.Final(), len(seq.Attempts), seq.Succeeded)
	return inv.Replier.Reply(ctx, formatSequence(expr, seq, c.maxAttempts))
}

func (c *Cog) number(ctx context.Context, inv bot.Invocation) error {
	limit := defaultNumberLimit
	if len(inv.Args) > 0 {
		value, err := strconv.Atoi(inv.Args[0])
		if err != nil || value < 1 {
			return apperrors.WithMetadata(apperrors.CodeRollRangeInvalid,
				"number range must be a positive integer",
				map[string]string{"Range": inv.Args[0]})
		}
		limit = value
	}

	src, err := c.source()
	if err != nil {
		return err
	}

	value := src.Intn(limit) + 1
	return inv.Replier.Reply(ctx, fmt.Sprintf("%d (1-%d)", value, limit))
}

func (c *Cog) stats(ctx context.Context, inv bot.Invocation) error {
	if c.store == nil {
		return apperrors.New(apperrors.CodeRollStatsUnavailable, "roll store is not configured")
	}

	stats, err := c.store.AuthorStats(ctx, inv.Author)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeRollStatsUnavailable, "load author stats", err)
	}
	if stats.RollCount == 0 {
		return inv.Replier.Reply(ctx, fmt.Sprintf("%s: no rolls recorded yet", inv.Author))
	}
	return inv.Replier.Reply(ctx, fmt.Sprintf("%s: %d rolls, best total %d, last on %s",
		inv.Author, stats.RollCount, stats.BestTotal, stats.LastRoll.Format("2006-01-02")))
}

// source builds a fresh pseudo-random source for one command invocation.
func (c *Cog) source() (dice.Source, error) {
	seed, err := c.seedFunc()
	if err != nil {
		return nil, fmt.Errorf("generate roll seed: %w", err)
	}
	return c.newSource(seed), nil
}

// record appends the roll to the audit store. Auditing is best effort: a
// storage failure is logged and the reply still goes out.
func (c *Cog) record(ctx context.Context, author string, expr dice.Expression, result dice.Result, attempts int, succeeded bool) {
	if c.store == nil {
		return
	}
	recordID, err := id.NewID()
	if err != nil {
		log.Printf("generate roll record id: %v", err)
		return
	}
	record := rolls.Record{
		ID:        recordID,
		Author:    author,
		Notation:  expr.String(),
		Rolls:     result.Rolls,
		Total:     result.Total,
		Attempts:  attempts,
		Succeeded: succeeded,
		CreatedAt: c.clock(),
	}
	if err := c.store.AppendRoll(ctx, record); err != nil {
		log.Printf("record roll for %s: %v", author, err)
	}
}

func formatSequence(expr dice.Expression, seq dice.Sequence, maxAttempts int) string {
	totals := make([]int, len(seq.Attempts))
	for i, attempt := range seq.Attempts {
		totals[i] = attempt.Total
	}
	history := fmt.Sprintf("%v", totals)
	if len(totals) > shownAttempts {
		history = fmt.Sprintf("%v and %d more", totals[:shownAttempts], len(totals)-shownAttempts)
	}

	final := seq.Final()
	if seq.Succeeded {
		return fmt.Sprintf("%s: %v = %d on attempt %d/%d, totals %s",
			expr, final.Rolls, final.Total, len(seq.Attempts), maxAttempts, history)
	}
	return fmt.Sprintf("%s: condition not met in %d attempts, totals %s",
		expr, len(seq.Attempts), history)
}

// mapDiceError converts dice engine sentinels into domain errors the router
// can localize.
func mapDiceError(err error) error {
	switch {
	case errors.Is(err, dice.ErrMalformedExpression):
		return apperrors.Wrap(apperrors.CodeDiceMalformedExpression, "malformed dice notation", err)
	case errors.Is(err, dice.ErrInvalidCount):
		return apperrors.Wrap(apperrors.CodeDiceInvalidCount, "invalid dice count", err)
	case errors.Is(err, dice.ErrInvalidSides):
		return apperrors.Wrap(apperrors.CodeDiceInvalidSides, "invalid dice sides", err)
	case errors.Is(err, dice.ErrLimitExceeded):
		return apperrors.WrapWithMetadata(apperrors.CodeDiceLimitExceeded, "dice limits exceeded",
			map[string]string{
				"MaxDice":  strconv.Itoa(dice.MaxDice),
				"MaxSides": strconv.Itoa(dice.MaxSides),
			}, err)
	case errors.Is(err, dice.ErrInvalidAttempts):
		return apperrors.Wrap(apperrors.CodeRollInvalidAttempts, "invalid attempt bound", err)
	default:
		return err
	}
}
