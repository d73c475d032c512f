package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/rankaisija/internal/platform/errors"
)

type fakeReplier struct {
	texts []string
	files []string
}

func (r *fakeReplier) Reply(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeReplier) ReplyFile(_ context.Context, path string) error {
	r.files = append(r.files, path)
	return nil
}

func newTestRouter(t *testing.T, registry *Registry) *Router {
	t.Helper()
	router := NewRouter("!", "en-US", registry)
	router.logf = func(string, ...any) {}
	return router
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(Command{
		Name:    "eft",
		Aliases: []string{"tarkov"},
		Run:     func(context.Context, Invocation) error { return nil },
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, ok := registry.Lookup("eft"); !ok {
		t.Fatal("expected lookup by name to succeed")
	}
	if _, ok := registry.Lookup("TARKOV"); !ok {
		t.Fatal("expected case-insensitive alias lookup to succeed")
	}
	if _, ok := registry.Lookup("missing"); ok {
		t.Fatal("expected unknown command lookup to fail")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, Invocation) error { return nil }
	if err := registry.Register(Command{Name: "roll", Run: noop}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(Command{Name: "number", Aliases: []string{"roll"}, Run: noop}); err == nil {
		t.Fatal("expected duplicate alias registration to fail")
	}
}

func TestRegistryRejectsMissingRun(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Command{Name: "broken"}); err == nil {
		t.Fatal("expected registration without run function to fail")
	}
}

func TestDispatchRunsCommandWithArgs(t *testing.T) {
	registry := NewRegistry()
	var got Invocation
	err := registry.Register(Command{
		Name: "roll",
		Run: func(_ context.Context, inv Invocation) error {
			got = inv
			return nil
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	router := newTestRouter(t, registry)
	replier := &fakeReplier{}
	router.Dispatch(context.Background(), "tester", "!roll 2d6+3", replier)

	if got.Author != "tester" {
		t.Fatalf("expected author tester, got %q", got.Author)
	}
	if len(got.Args) != 1 || got.Args[0] != "2d6+3" {
		t.Fatalf("unexpected args: %v", got.Args)
	}
}

func TestDispatchIgnoresUnprefixedAndUnknown(t *testing.T) {
	registry := NewRegistry()
	calls := 0
	err := registry.Register(Command{
		Name: "hello",
		Run: func(context.Context, Invocation) error {
			calls++
			return nil
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	router := newTestRouter(t, registry)
	replier := &fakeReplier{}
	router.Dispatch(context.Background(), "tester", "hello", replier)
	router.Dispatch(context.Background(), "tester", "!unknown", replier)
	router.Dispatch(context.Background(), "tester", "!", replier)

	if calls != 0 {
		t.Fatalf("expected no command calls, got %d", calls)
	}
	if len(replier.texts) != 0 {
		t.Fatalf("expected no replies, got %v", replier.texts)
	}
}

func TestDispatchRendersDomainErrorLocalized(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(Command{
		Name: "roll",
		Run: func(context.Context, Invocation) error {
			return errors.New(errors.CodeDiceInvalidSides, "dice must have at least two sides")
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	router := newTestRouter(t, registry)
	replier := &fakeReplier{}
	router.Dispatch(context.Background(), "tester", "!roll 3d1", replier)

	if len(replier.texts) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replier.texts))
	}
	if !strings.Contains(replier.texts[0], "at least two sides") {
		t.Fatalf("expected localized sides message, got %q", replier.texts[0])
	}
}

func TestDispatchRendersUnknownErrorGenerically(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(Command{
		Name: "stock",
		Run: func(context.Context, Invocation) error {
			return context.DeadlineExceeded
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	router := newTestRouter(t, registry)
	replier := &fakeReplier{}
	router.Dispatch(context.Background(), "tester", "!stock", replier)

	if len(replier.texts) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replier.texts))
	}
	if replier.texts[0] != "Something went wrong" {
		t.Fatalf("unexpected generic reply: %q", replier.texts[0])
	}
}

func TestRegistryNamesAreCanonicalAndSorted(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, Invocation) error { return nil }
	err := registry.Register(
		Command{Name: "roll", Aliases: []string{"noppa"}, Run: noop},
		Command{Name: "hello", Run: noop},
	)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	names := registry.Names()
	if len(names) != 2 || names[0] != "hello" || names[1] != "roll" {
		t.Fatalf("unexpected names: %v", names)
	}
}
