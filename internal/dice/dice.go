// Package dice implements dice-notation parsing and roll evaluation.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// MaxDice caps the number of dice a single expression may roll.
const MaxDice = 100

// MaxSides caps the number of faces per die.
const MaxSides = 1000

// ErrMalformedExpression indicates the notation does not match the grammar.
var ErrMalformedExpression = errors.New("malformed dice expression")

// ErrInvalidCount indicates the dice count is present but not positive.
var ErrInvalidCount = errors.New("dice count must be a positive integer")

// ErrInvalidSides indicates the side count is missing or below two.
var ErrInvalidSides = errors.New("dice must have at least two sides")

// ErrLimitExceeded indicates the count or sides exceed the configured maxima.
var ErrLimitExceeded = errors.New("dice expression exceeds roll limits")

// ErrInvalidAttempts indicates a roll-until bound below one.
var ErrInvalidAttempts = errors.New("max attempts must be at least one")

// Expression is the parsed form of a dice notation string such as "2d6+3".
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the canonical notation for the expression. The output
// round-trips through Parse.
func (e Expression) String() string {
	notation := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	if e.Modifier > 0 {
		notation += "+" + strconv.Itoa(e.Modifier)
	}
	if e.Modifier < 0 {
		notation += strconv.Itoa(e.Modifier)
	}
	return notation
}

// Parse converts a dice notation string into an Expression.
//
// The grammar is case-insensitive with surrounding whitespace trimmed:
//
//	expression := [count] "d" sides [modifier]
//	count      := empty | positive-integer       (empty means 1)
//	sides      := positive-integer               (at least 2)
//	modifier   := ("+" | "-") positive-integer   (absent means 0)
//
// Parse performs no randomness or I/O; it is a pure function of its input.
// An expression rolling more than MaxDice dice or dice with more than
// MaxSides faces is rejected with ErrLimitExceeded so untrusted chat input
// cannot request unbounded work.
func Parse(notation string) (Expression, error) {
	trimmed := strings.ToLower(strings.TrimSpace(notation))
	if strings.Count(trimmed, "d") != 1 {
		return Expression{}, ErrMalformedExpression
	}

	countPart, sidesPart, _ := strings.Cut(trimmed, "d")

	count := 1
	if countPart != "" {
		value, err := strconv.Atoi(countPart)
		if err != nil {
			return Expression{}, ErrMalformedExpression
		}
		if value < 1 {
			return Expression{}, ErrInvalidCount
		}
		count = value
	}

	modifier := 0
	if idx := strings.IndexAny(sidesPart, "+-"); idx != -1 {
		modPart := sidesPart[idx:]
		sidesPart = sidesPart[:idx]
		if len(modPart) < 2 {
			return Expression{}, ErrMalformedExpression
		}
		value, err := strconv.Atoi(modPart)
		if err != nil {
			return Expression{}, ErrMalformedExpression
		}
		modifier = value
	}

	if sidesPart == "" {
		return Expression{}, ErrInvalidSides
	}
	sides, err := strconv.Atoi(sidesPart)
	if err != nil {
		return Expression{}, ErrMalformedExpression
	}
	if sides < 2 {
		return Expression{}, ErrInvalidSides
	}

	if count > MaxDice || sides > MaxSides {
		return Expression{}, ErrLimitExceeded
	}

	return Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Source yields uniformly distributed integers for die faces. Intn must
// return a value in [0, n). *math/rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a pseudo-random Source seeded with the provided seed.
// Rolls drawn from the same seed are deterministic.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Result captures the outcome of evaluating one Expression once.
type Result struct {
	// Rolls holds one value per die in generation order, each in [1, sides].
	Rolls []int
	// Total is the sum of Rolls plus the expression modifier.
	Total int
}

// Roll evaluates the expression once against the provided source.
//
// Roll draws Count independent samples, each uniform over [1, Sides],
// preserving generation order in Result.Rolls. It never fails for an
// Expression produced by Parse.
func Roll(expr Expression, src Source) Result {
	rolls := make([]int, expr.Count)
	total := expr.Modifier
	for i := range rolls {
		value := rollDie(src, expr.Sides)
		rolls[i] = value
		total += value
	}
	return Result{Rolls: rolls, Total: total}
}

// Condition reports whether a roll total terminates iterative rolling.
// Conditions must be pure functions of the total.
type Condition func(total int) bool

// Sequence captures a bounded roll-until evaluation.
type Sequence struct {
	// Attempts holds every roll performed, in chronological order.
	Attempts []Result
	// Succeeded reports whether the condition was met before the bound.
	Succeeded bool
}

// Final returns the last attempt: the roll that satisfied the condition, or
// the final unsuccessful roll when the bound was exhausted.
func (s Sequence) Final() Result {
	return s.Attempts[len(s.Attempts)-1]
}

// RollUntil repeats Roll until the condition holds for an attempt's total or
// maxAttempts rolls have been performed.
//
// The first satisfying attempt short-circuits the loop. A maxAttempts below
// one returns ErrInvalidAttempts before any randomness is consumed; the
// bound is what keeps an unsatisfiable condition from looping forever.
func RollUntil(expr Expression, condition Condition, src Source, maxAttempts int) (Sequence, error) {
	if maxAttempts < 1 {
		return Sequence{}, ErrInvalidAttempts
	}

	attempts := make([]Result, 0, maxAttempts)
	for i := 0; i < maxAttempts; i++ {
		result := Roll(expr, src)
		attempts = append(attempts, result)
		if condition(result.Total) {
			return Sequence{Attempts: attempts, Succeeded: true}, nil
		}
	}
	return Sequence{Attempts: attempts, Succeeded: false}, nil
}

// rollDie rolls a die with the provided number of sides.
func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
