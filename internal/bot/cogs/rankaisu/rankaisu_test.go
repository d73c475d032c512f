package rankaisu

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/rankaisija/internal/bot"
)

type fakeReplier struct {
	texts []string
}

func (r *fakeReplier) Reply(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeReplier) ReplyFile(context.Context, string) error { return nil }

func runRankaise(t *testing.T, args []string) string {
	t.Helper()
	replier := &fakeReplier{}
	cmds := Commands()
	err := cmds[0].Run(context.Background(), bot.Invocation{
		Author:  "tester",
		Args:    args,
		Replier: replier,
	})
	if err != nil {
		t.Fatalf("run rankaise: %v", err)
	}
	if len(replier.texts) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replier.texts))
	}
	return replier.texts[0]
}

func TestRankaiseWithoutTarget(t *testing.T) {
	msg := runRankaise(t, nil)
	if msg != "tester alensi itsensä pojaksi ja käytti rankaisumetodeja itseensä" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRankaiseWithTarget(t *testing.T) {
	msg := runRankaise(t, []string{"masa"})
	if msg != "tester käytti rankaisumetodeja poikaan: masa" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRankaiseWithOverlongTarget(t *testing.T) {
	msg := runRankaise(t, []string{strings.Repeat("ä", 21)})
	if msg != "tester ei ottanut rankaisumetodeja vakavasti ja joutui poikien mukana kamarille" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRankaiseTargetLengthBoundary(t *testing.T) {
	target := strings.Repeat("ä", 20)
	msg := runRankaise(t, []string{target})
	if !strings.HasSuffix(msg, target) {
		t.Fatalf("expected 20-rune target to be punished normally, got %q", msg)
	}
}
