package roller

import (
	"strings"

	"github.com/expr-lang/expr"

	"github.com/louisbranch/rankaisija/internal/dice"
	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
)

// compileCondition turns a chat-supplied condition into a stop predicate
// over a roll total.
//
// Two forms are accepted: comparator shorthand against the total ("=7",
// ">=18", "<3", "!=1") and full boolean expressions naming the total
// explicitly ("total >= 18", "total % 2 == 0"). Everything is compiled once
// up front so an invalid condition is rejected before any dice are rolled.
func compileCondition(raw string) (dice.Condition, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, conditionError(raw)
	}

	if strings.HasPrefix(text, "=") && !strings.HasPrefix(text, "==") {
		text = "=" + text
	}
	if strings.HasPrefix(text, "==") || strings.HasPrefix(text, "!=") ||
		strings.HasPrefix(text, ">") || strings.HasPrefix(text, "<") {
		text = "total " + text
	}

	program, err := expr.Compile(text, expr.Env(conditionEnv(0)), expr.AsBool())
	if err != nil {
		return nil, conditionError(raw)
	}

	return func(total int) bool {
		output, err := expr.Run(program, conditionEnv(total))
		if err != nil {
			return false
		}
		value, ok := output.(bool)
		return ok && value
	}, nil
}

func conditionEnv(total int) map[string]any {
	return map[string]any{"total": total}
}

func conditionError(raw string) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeRollConditionInvalid,
		"invalid stop condition",
		map[string]string{"Condition": strings.TrimSpace(raw)})
}
