package hello

import (
	"context"
	"testing"

	"github.com/louisbranch/rankaisija/internal/bot"
)

func invocationWith(r bot.Replier) bot.Invocation {
	return bot.Invocation{Author: "tester", Replier: r}
}

type fakeReplier struct {
	texts []string
}

func (r *fakeReplier) Reply(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeReplier) ReplyFile(context.Context, string) error { return nil }

func TestHelloReplies(t *testing.T) {
	cmds := Commands()
	if len(cmds) != 1 || cmds[0].Name != "hello" {
		t.Fatalf("unexpected commands: %+v", cmds)
	}

	replier := &fakeReplier{}
	if err := cmds[0].Run(context.Background(), invocationWith(replier)); err != nil {
		t.Fatalf("run hello: %v", err)
	}
	if len(replier.texts) != 1 || replier.texts[0] != "hello" {
		t.Fatalf("unexpected replies: %v", replier.texts)
	}
}
