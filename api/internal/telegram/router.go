package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/form"
	"smart-checker/api/internal/llm"
)

const usageText = "Send me a business case objective as a plain text message and I will score it " +
	"against each SMART criterion.\nCommands: /help, /engine"

// Sender is the part of *tgbotapi.BotAPI the router needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Router struct {
	Bot     Sender
	Checker form.Checker
	// Engine is reported by /engine. Nil means mock mode.
	Engine llm.Engine
	Log    *zap.Logger
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start", "help":
		r.send(cid, usageText)
	case "engine":
		if r.Engine == nil {
			r.send(cid, "Engine: mock (fixed sample feedback)")
			return
		}
		r.send(cid, "Engine: "+r.Engine.Name()+" ("+r.Engine.GetModel()+")")
	default:
		r.send(cid, "Unknown command. "+usageText)
	}
}

// HandleUpdate evaluates every non-command text message as an objective.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	cid := upd.Message.Chat.ID
	text := upd.Message.Text
	if strings.TrimSpace(text) == "" {
		r.send(cid, usageText)
		return
	}

	ctx, id := evaluator.WithID(ctx, "")
	f, err := form.Run(ctx, text, r.Checker)
	if err != nil {
		r.logger().Info("objective not scored",
			zap.Int64("chat_id", cid),
			zap.String("evaluation_id", id),
			zap.Error(err))
		r.SendError(cid, f.Error)
		return
	}
	r.SendResult(cid, f.Rows())
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		r.logger().Warn("telegram send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// SendResult replies with the rows as Markdown, or as plain text when Telegram
// rejects the formatted message.
func (r *Router) SendResult(chatID int64, rows []form.Row) {
	msg := tgbotapi.NewMessage(chatID, RenderMarkdown(rows))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := r.Bot.Send(msg); err != nil {
		r.logger().Warn("markdown reply rejected, resending as plain text",
			zap.Int64("chat_id", chatID), zap.Error(err))
		r.send(chatID, RenderPlain(rows))
	}
}

func (r *Router) SendError(chatID int64, message string) {
	r.send(chatID, "⚠️ Issue: "+message)
}

func (r *Router) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
