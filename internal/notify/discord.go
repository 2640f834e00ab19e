package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/IdleSect_Go/internal/logger"
)

// DiscordSink posts player notifications to a Discord channel.
// Failures are logged and swallowed: notifications are fire-and-forget.
type DiscordSink struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordSink creates a Discord-backed notification sink
func NewDiscordSink(token, channelID string) (*DiscordSink, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &DiscordSink{
		session:   session,
		channelID: channelID,
	}, nil
}

// Open connects the underlying Discord session
func (d *DiscordSink) Open() error {
	return d.session.Open()
}

// Close shuts down the Discord session
func (d *DiscordSink) Close() error {
	return d.session.Close()
}

func (d *DiscordSink) Notify(ctx context.Context, userID, message string, severity Severity) {
	prefix := severityEmoji(severity)

	if _, err := d.session.ChannelMessageSend(d.channelID, prefix+" "+message); err != nil {
		logger.FromContext(ctx).Warn("Failed to send discord notification",
			"error", err, "user_id", userID, "severity", severity)
	}
}

func severityEmoji(severity Severity) string {
	switch severity {
	case SeveritySuccess:
		return "✅"
	case SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}
