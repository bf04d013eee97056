package telegram

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	pollTimeout = 30 // seconds, long polling
	baseDelay   = 1 * time.Second
	maxDelay    = 15 * time.Second
	idleDelay   = 200 * time.Millisecond
)

// Poller is the part of *tgbotapi.BotAPI used for long polling.
type Poller interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

// RetryDelay picks the pause before the next poll after err.
func RetryDelay(err error) time.Duration {
	if err == nil {
		return 0
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") {
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return clampDelay(time.Duration(n) * time.Second)
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return 2 * time.Second
	}
	return baseDelay
}

func clampDelay(d time.Duration) time.Duration {
	if d < baseDelay {
		return baseDelay
	}
	if d > maxDelay {
		return maxDelay
	}
	return d
}

// RunPolling fetches updates until ctx is done, handing them to handle in order.
// Poll errors are logged and retried; it never gives up on its own.
func RunPolling(ctx context.Context, bot Poller, log *zap.Logger, handle func(context.Context, tgbotapi.Update)) {
	offset := 0
	for {
		if ctx.Err() != nil {
			log.Info("polling stopped")
			return
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = pollTimeout

		updates, err := bot.GetUpdates(u)
		if err != nil {
			d := RetryDelay(err)
			log.Warn("polling error", zap.Error(err), zap.Duration("retry_in", d))
			sleep(ctx, d)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(ctx, upd)
		}

		if len(updates) == 0 {
			sleep(ctx, idleDelay)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// UpdateParser is the part of *tgbotapi.BotAPI that decodes webhook requests.
type UpdateParser interface {
	HandleUpdate(r *http.Request) (*tgbotapi.Update, error)
}

// WebhookHandler decodes each webhook call and queues the update on out.
func WebhookHandler(p UpdateParser, out chan<- tgbotapi.Update, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upd, err := p.HandleUpdate(r)
		if err != nil {
			log.Warn("bad webhook update", zap.Error(err))
			http.Error(w, "bad update", http.StatusBadRequest)
			return
		}
		select {
		case out <- *upd:
			w.WriteHeader(http.StatusOK)
		case <-r.Context().Done():
		}
	}
}

// WebhookPath derives a stable secret path from the bot token.
func WebhookPath(token string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	return fmt.Sprintf("/webhook/%016x", h.Sum64())
}
