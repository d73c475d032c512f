package roller

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
)

func TestCompileConditionShorthand(t *testing.T) {
	tcs := []struct {
		condition string
		total     int
		want      bool
	}{
		{">=18", 18, true},
		{">=18", 17, false},
		{">10", 11, true},
		{">10", 10, false},
		{"<3", 2, true},
		{"<3", 3, false},
		{"<=5", 5, true},
		{"=7", 7, true},
		{"=7", 8, false},
		{"==7", 7, true},
		{"!=1", 2, true},
		{"!=1", 1, false},
	}
	for _, tc := range tcs {
		cond, err := compileCondition(tc.condition)
		if err != nil {
			t.Fatalf("compile %q: %v", tc.condition, err)
		}
		if got := cond(tc.total); got != tc.want {
			t.Fatalf("%q with total %d = %v, want %v", tc.condition, tc.total, got, tc.want)
		}
	}
}

func TestCompileConditionFullExpression(t *testing.T) {
	cond, err := compileCondition("total % 2 == 0")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !cond(4) {
		t.Fatal("expected 4 to satisfy total % 2 == 0")
	}
	if cond(5) {
		t.Fatal("expected 5 to fail total % 2 == 0")
	}
}

func TestCompileConditionTrimsWhitespace(t *testing.T) {
	cond, err := compileCondition("  >= 6  ")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !cond(6) {
		t.Fatal("expected trimmed shorthand to match total 6")
	}
}

func TestCompileConditionRejectsInvalid(t *testing.T) {
	for _, condition := range []string{"", "   ", "total +", "banana???", "total"} {
		_, err := compileCondition(condition)
		if !errors.Is(err, apperrors.New(apperrors.CodeRollConditionInvalid, "")) {
			t.Fatalf("compile(%q) error = %v, want condition error", condition, err)
		}
	}
}
