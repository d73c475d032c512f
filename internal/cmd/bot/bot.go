// Package bot parses bot command flags and composes the Discord runtime.
package bot

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/rankaisija/internal/api/grpc/ops"
	"github.com/louisbranch/rankaisija/internal/bot"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/ghost"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/hello"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/images"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/rankaisu"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/roller"
	"github.com/louisbranch/rankaisija/internal/bot/cogs/stock"
	"github.com/louisbranch/rankaisija/internal/bot/discord"
	entrypoint "github.com/louisbranch/rankaisija/internal/platform/cmd"
	"github.com/louisbranch/rankaisija/internal/platform/config"
	rollsqlite "github.com/louisbranch/rankaisija/internal/storage/rolls/sqlite"
)

// defaultCogs lists every cog, enabled when no explicit list is configured.
var defaultCogs = []string{"hello", "images", "ghost", "rankaisu", "roller", "stock"}

// Config holds bot command configuration.
type Config struct {
	ConfigFile      string   `env:"RANKAISIJA_CONFIG"                                      yaml:"-"`
	Token           string   `env:"RANKAISIJA_DISCORD_TOKEN"                               yaml:"token"`
	Prefix          string   `env:"RANKAISIJA_PREFIX"            envDefault:"!"            yaml:"prefix"`
	Locale          string   `env:"RANKAISIJA_LOCALE"            envDefault:"fi-FI"        yaml:"locale"`
	ImagesDir       string   `env:"RANKAISIJA_IMAGES_DIR"        envDefault:"images"       yaml:"images_dir"`
	DBPath          string   `env:"RANKAISIJA_DB_PATH"                                     yaml:"db_path"`
	OpsAddr         string   `env:"RANKAISIJA_OPS_ADDR"          envDefault:":8090"        yaml:"ops_addr"`
	MaxRollAttempts int      `env:"RANKAISIJA_MAX_ROLL_ATTEMPTS" envDefault:"100"          yaml:"max_roll_attempts"`
	Cogs            []string `env:"RANKAISIJA_COGS"              envSeparator:","          yaml:"cogs"`
}

// ParseConfig parses environment, optional YAML file, and flags into a
// Config. Precedence is environment, then file, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	var cogList string
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "path to YAML config file")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "discord bot token")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "command prefix")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "reply locale")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "directory with reply images")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "roll history database path (empty disables)")
	fs.StringVar(&cfg.OpsAddr, "ops-addr", cfg.OpsAddr, "operational gRPC listen address")
	fs.IntVar(&cfg.MaxRollAttempts, "max-roll-attempts", cfg.MaxRollAttempts, "attempt bound for rolluntil")
	fs.StringVar(&cogList, "cogs", "", "comma-separated cogs to enable")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := config.LoadFile(cfg.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return Config{}, fmt.Errorf("reapply flag %s: %w", name, err)
			}
		}
	}
	if cogList != "" {
		cfg.Cogs = strings.Split(cogList, ",")
	}
	if len(cfg.Cogs) == 0 {
		cfg.Cogs = defaultCogs
	}
	return cfg, nil
}

// Run builds the bot runtime and serves Discord traffic plus the ops
// endpoint until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(ctx context.Context) error {
		registry := bot.NewRegistry()

		rollerCfg := roller.Config{MaxAttempts: cfg.MaxRollAttempts}
		if cfg.DBPath != "" {
			store, err := rollsqlite.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open roll store: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close roll store: %v", err)
				}
			}()
			rollerCfg.Store = store
		}

		for _, name := range cfg.Cogs {
			commands, err := cogCommands(name, cfg, rollerCfg)
			if err != nil {
				return err
			}
			if err := registry.Register(commands...); err != nil {
				return fmt.Errorf("register %s cog: %w", name, err)
			}
		}
		log.Printf("enabled commands: %s", strings.Join(registry.Names(), ", "))

		router := bot.NewRouter(cfg.Prefix, cfg.Locale, registry)
		gateway, err := discord.New(discord.Config{Token: cfg.Token, Router: router})
		if err != nil {
			return err
		}
		opsServer, err := ops.New(cfg.OpsAddr)
		if err != nil {
			return err
		}

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		errCh := make(chan error, 2)
		go func() {
			errCh <- opsServer.Serve(runCtx)
		}()
		go func() {
			errCh <- gateway.Run(runCtx)
		}()

		err = <-errCh
		cancel()
		if second := <-errCh; err == nil {
			err = second
		}
		return err
	})
}

func cogCommands(name string, cfg Config, rollerCfg roller.Config) ([]bot.Command, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hello":
		return hello.Commands(), nil
	case "images":
		return images.Commands(cfg.ImagesDir), nil
	case "ghost":
		return ghost.Commands(cfg.ImagesDir, time.Now), nil
	case "rankaisu":
		return rankaisu.Commands(), nil
	case "roller":
		return roller.New(rollerCfg).Commands(), nil
	case "stock":
		return stock.New(stock.Config{}).Commands(), nil
	default:
		return nil, fmt.Errorf("unknown cog %q", name)
	}
}
