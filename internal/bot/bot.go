// Package bot routes chat messages to registered commands.
//
// The router owns no transport: it receives already-decoded message text and
// replies through the Replier interface, so the same dispatch logic serves
// the Discord adapter and tests alike.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
	"github.com/louisbranch/rankaisija/internal/platform/errors/i18n"
)

// Replier delivers command output back to the channel a message came from.
type Replier interface {
	Reply(ctx context.Context, text string) error
	ReplyFile(ctx context.Context, path string) error
}

// Invocation carries one command call: who asked, with what arguments, and
// where the answer goes.
type Invocation struct {
	Author  string
	Args    []string
	Replier Replier
}

// Command is a named chat command with optional aliases.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Run     func(ctx context.Context, inv Invocation) error
}

// Registry resolves command names and aliases to commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: map[string]Command{}}
}

// Register adds commands to the registry. Names and aliases share one
// namespace; a duplicate registration is a wiring bug and fails loudly.
func (r *Registry) Register(cmds ...Command) error {
	for _, cmd := range cmds {
		name := strings.ToLower(strings.TrimSpace(cmd.Name))
		if name == "" {
			return fmt.Errorf("command name is required")
		}
		if cmd.Run == nil {
			return fmt.Errorf("command %s has no run function", name)
		}
		keys := append([]string{name}, cmd.Aliases...)
		for _, key := range keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				return fmt.Errorf("command %s has an empty alias", name)
			}
			if _, exists := r.commands[key]; exists {
				return fmt.Errorf("command name %s registered twice", key)
			}
			r.commands[key] = cmd
		}
	}
	return nil
}

// Lookup resolves a name or alias to its command.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[strings.ToLower(strings.TrimSpace(name))]
	return cmd, ok
}

// Names returns the canonical command names in sorted order.
func (r *Registry) Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, cmd := range r.commands {
		key := strings.ToLower(cmd.Name)
		if !seen[key] {
			seen[key] = true
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

// Router dispatches prefixed chat messages to registry commands.
type Router struct {
	prefix   string
	locale   string
	registry *Registry
	tracer   trace.Tracer
	logf     func(format string, args ...any)
}

// NewRouter creates a router for the given command prefix and reply locale.
func NewRouter(prefix, locale string, registry *Registry) *Router {
	return &Router{
		prefix:   prefix,
		locale:   locale,
		registry: registry,
		tracer:   otel.Tracer("rankaisija/bot"),
		logf:     log.Printf,
	}
}

// Dispatch handles one incoming message. Messages without the command prefix
// or naming no known command are ignored. Command failures are rendered to
// the channel as localized messages and never propagate: a bad roll request
// must not take the bot down.
func (r *Router) Dispatch(ctx context.Context, author, content string, replier Replier) {
	if !strings.HasPrefix(content, r.prefix) {
		return
	}
	fields := strings.Fields(content[len(r.prefix):])
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := r.registry.Lookup(name)
	if !ok {
		return
	}

	ctx, span := r.tracer.Start(ctx, "bot.command",
		trace.WithAttributes(
			attribute.String("command.name", cmd.Name),
			attribute.String("command.author", author),
		),
	)
	defer span.End()

	err := cmd.Run(ctx, Invocation{
		Author:  author,
		Args:    fields[1:],
		Replier: replier,
	})
	if err != nil {
		r.replyError(ctx, cmd.Name, author, err, replier)
		return
	}
	r.logf("executed %s command by %s", cmd.Name, author)
}

func (r *Router) replyError(ctx context.Context, command, author string, err error, replier Replier) {
	catalog := i18n.GetCatalog(r.locale)

	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		r.logf("command %s by %s failed: %s: %v", command, author, domainErr.Code, err)
		if replyErr := replier.Reply(ctx, catalog.Format(string(domainErr.Code), domainErr.Metadata)); replyErr != nil {
			r.logf("reply for %s failed: %v", command, replyErr)
		}
		return
	}

	r.logf("command %s by %s failed: %v", command, author, err)
	if replyErr := replier.Reply(ctx, catalog.Format(string(apperrors.CodeUnknown), nil)); replyErr != nil {
		r.logf("reply for %s failed: %v", command, replyErr)
	}
}
