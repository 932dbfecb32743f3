package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, recipient *domain.User, note domain.Notification) {
	text, ok := Message(note)
	if !ok {
		n.logger.Debug("notification skipped (unknown kind)", logger.String("kind", string(note.Kind)))
		return
	}
	if !recipient.Notifiable() {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("kind", string(note.Kind)))
		return
	}
	n.send(ctx, *recipient.TelegramChatID, text)
}

// Message renders the Telegram text for a notification about a booking.
func Message(note domain.Notification) (string, bool) {
	b := note.Booking
	title := tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.Title)
	actor := actorName(note.Actor)

	var head, body string
	switch note.Kind {
	case domain.NotificationBookingRequested:
		head = "New booking request"
		body = fmt.Sprintf("You received a booking request for %s.", title)
	case domain.NotificationBookingAllowed:
		head = "Request accepted"
		body = fmt.Sprintf("The artist accepted your request for %s. You can now negotiate the terms.", title)
	case domain.NotificationTermsChanged:
		head = "Terms changed"
		body = fmt.Sprintf("The %s changed the terms of %s. Review them before approving.", actor, title)
	case domain.NotificationApprovalReset:
		head = "Approval needed again"
		body = fmt.Sprintf("The %s changed the terms of %s after you approved. Your approval was reset.", actor, title)
	case domain.NotificationBookingApproved:
		head = "Booking approved"
		body = fmt.Sprintf("The %s approved %s.", actor, title)
		if b.Status == domain.BookingStatusApprovedByBoth {
			body += " Both parties have approved, contact details are now shared."
		}
	case domain.NotificationBookingPublished:
		head = "Booking published"
		body = fmt.Sprintf("%s is now public.", title)
	case domain.NotificationBookingRemoved:
		head = "Booking removed"
		body = fmt.Sprintf("The %s removed %s.", actor, title)
	default:
		return "", false
	}

	lines := []string{"*" + head + "*", "", body}
	if b.EventDate != nil {
		lines = append(lines, "Date: "+b.EventDate.Format("02.01.2006"))
	}
	if b.Venue != "" {
		lines = append(lines, "Venue: "+tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.Venue))
	}
	return strings.Join(lines, "\n"), true
}

func actorName(p domain.Party) string {
	if p == domain.PartyReceiver {
		return "artist"
	}
	return "organizer"
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
