// Package rankaisu provides the rankaise command.
package rankaisu

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/rankaisija/internal/bot"
)

// maxTargetLen guards against joke targets long enough to break the bit.
const maxTargetLen = 20

// Commands returns the rankaisu cog's commands.
func Commands() []bot.Command {
	return []bot.Command{
		{
			Name:  "rankaise",
			Usage: "rankaise [kohde]",
			Run: func(ctx context.Context, inv bot.Invocation) error {
				return inv.Replier.Reply(ctx, message(inv.Author, inv.Args))
			},
		},
	}
}

func message(author string, args []string) string {
	target := strings.Join(args, " ")
	switch {
	case target == "":
		return fmt.Sprintf("%s alensi itsensä pojaksi ja käytti rankaisumetodeja itseensä", author)
	case utf8.RuneCountInString(target) > maxTargetLen:
		return fmt.Sprintf("%s ei ottanut rankaisumetodeja vakavasti ja joutui poikien mukana kamarille", author)
	default:
		return fmt.Sprintf("%s käytti rankaisumetodeja poikaan: %s", author, target)
	}
}
