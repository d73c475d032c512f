// Package discord connects the command router to the Discord gateway.
package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"github.com/louisbranch/rankaisija/internal/bot"
)

// Dispatcher routes one incoming chat message to a command.
type Dispatcher interface {
	Dispatch(ctx context.Context, author, content string, replier bot.Replier)
}

// Config wires the Discord gateway.
type Config struct {
	// Token is the Discord bot token.
	Token string
	// Router dispatches incoming messages to commands.
	Router Dispatcher
}

// Gateway is a connected Discord session feeding messages to the router.
type Gateway struct {
	session *discordgo.Session
	router  Dispatcher
}

// New creates a Discord gateway. The session is not opened until Run.
func New(cfg Config) (*Gateway, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}
	if cfg.Router == nil {
		return nil, fmt.Errorf("discord router is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	gateway := &Gateway{session: session, router: cfg.Router}
	session.AddHandler(gateway.onMessageCreate)
	return gateway, nil
}

// Run opens the gateway and blocks until the context is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	log.Printf("discord gateway connected")

	<-ctx.Done()

	if err := g.session.Close(); err != nil {
		return fmt.Errorf("close discord gateway: %w", err)
	}
	return nil
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}
	replier := &channelReplier{session: s, channelID: m.ChannelID}
	g.router.Dispatch(context.Background(), m.Author.Username, m.Content, replier)
}

// channelReplier sends replies back to the channel the message came from.
type channelReplier struct {
	session   *discordgo.Session
	channelID string
}

func (r *channelReplier) Reply(_ context.Context, text string) error {
	if _, err := r.session.ChannelMessageSend(r.channelID, text); err != nil {
		return fmt.Errorf("send channel message: %w", err)
	}
	return nil
}

func (r *channelReplier) ReplyFile(_ context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open reply file: %w", err)
	}
	defer file.Close()

	if _, err := r.session.ChannelFileSend(r.channelID, filepath.Base(path), file); err != nil {
		return fmt.Errorf("send channel file: %w", err)
	}
	return nil
}
