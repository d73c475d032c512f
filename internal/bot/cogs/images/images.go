// Package images provides commands that answer with a static image.
//
// The command set mirrors the channel's running jokes; the cog itself is
// just a lookup table from command name to image file.
package images

import (
	"context"
	"os"
	"path/filepath"

	"github.com/louisbranch/rankaisija/internal/bot"
	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
)

type imageCommand struct {
	name    string
	aliases []string
	file    string
}

var imageCommands = []imageCommand{
	{name: "rakyta", aliases: []string{"räkytä"}, file: "rakyta.jpg"},
	{name: "ror", file: "ror.png"},
	{name: "hon", file: "hon.png"},
	{name: "eft", aliases: []string{"tarkov"}, file: "eft.png"},
	{name: "darktide", file: "darktide.png"},
	{name: "fellowship", file: "fellowship.png"},
	{name: "dotaukkoja", aliases: []string{"ukkoja"}, file: "dota_ukkoja.png"},
	{name: "ei", file: "ei.png"},
}

// Commands returns one command per known image, resolving files under dir.
func Commands(dir string) []bot.Command {
	cmds := make([]bot.Command, 0, len(imageCommands))
	for _, entry := range imageCommands {
		path := filepath.Join(dir, entry.file)
		cmds = append(cmds, bot.Command{
			Name:    entry.name,
			Aliases: entry.aliases,
			Run: func(ctx context.Context, inv bot.Invocation) error {
				if _, err := os.Stat(path); err != nil {
					return apperrors.WrapWithMetadata(apperrors.CodeImageMissing,
						"image file is missing",
						map[string]string{"Path": path},
						err)
				}
				return inv.Replier.ReplyFile(ctx, path)
			},
		})
	}
	return cmds
}
