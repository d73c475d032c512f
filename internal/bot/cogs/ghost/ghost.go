// Package ghost provides the Ghost gig countdown command.
package ghost

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/louisbranch/rankaisija/internal/bot"
)

// gigDate is the Ghost show in Tampere the channel counts down to.
var gigDate = time.Date(2022, time.April, 27, 0, 0, 0, 0, time.UTC)

// Commands returns the ghost cog's commands. The clock is injectable so the
// countdown branches are testable; a nil clock uses time.Now.
func Commands(imagesDir string, clock func() time.Time) []bot.Command {
	if clock == nil {
		clock = time.Now
	}
	imagePath := filepath.Join(imagesDir, "ghost_tampere.jpg")

	return []bot.Command{
		{
			Name: "ghost",
			Run: func(ctx context.Context, inv bot.Invocation) error {
				if err := inv.Replier.ReplyFile(ctx, imagePath); err != nil {
					return err
				}
				return inv.Replier.Reply(ctx, countdownMessage(clock()))
			},
		},
	}
}

func countdownMessage(now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case today.Equal(gigDate):
		return "Ghostin keikka tänään!!!"
	case today.After(gigDate):
		return "Ghostin keikka meni jo :("
	default:
		days := int(gigDate.Sub(today).Hours() / 24)
		return fmt.Sprintf("Ghostin tampereen keikkaan aikaa: %d päivää!", days)
	}
}
