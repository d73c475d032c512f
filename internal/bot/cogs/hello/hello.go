// Package hello provides the greeting command.
package hello

import (
	"context"

	"github.com/louisbranch/rankaisija/internal/bot"
)

// Commands returns the hello cog's commands.
func Commands() []bot.Command {
	return []bot.Command{
		{
			Name: "hello",
			Run: func(ctx context.Context, inv bot.Invocation) error {
				return inv.Replier.Reply(ctx, "hello")
			},
		},
	}
}
