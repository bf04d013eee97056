package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"smart-checker/api/internal/app"
	"smart-checker/api/internal/config"
	"smart-checker/api/internal/form"
	"smart-checker/api/internal/handle"
	"smart-checker/api/internal/httpserver"
	"smart-checker/api/internal/logging"
	"smart-checker/api/internal/telegram"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev, eng, err := app.NewEvaluator(cfg, logger)
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return err
	}
	bot.Debug = false

	r := &telegram.Router{
		Bot:     bot,
		Checker: form.CheckerFunc(ev.Evaluate),
		Engine:  eng,
		Log:     logger.Named("telegram"),
	}

	// the bot process also serves the form page and the score endpoint
	mux := httpserver.NewRouter(handle.New(ev, logger), logger)
	srv := httpserver.New("0.0.0.0:"+cfg.Port, mux)

	g, gctx := errgroup.WithContext(ctx)

	if webhookURL := strings.TrimSpace(cfg.Telegram.WebhookURL); webhookURL != "" {
		path := telegram.WebhookPath(bot.Token)
		public := strings.TrimRight(webhookURL, "/") + path

		wh, err := tgbotapi.NewWebhook(public)
		if err != nil {
			return err
		}
		wh.DropPendingUpdates = true
		if _, err := bot.Request(wh); err != nil {
			return err
		}

		updates := make(chan tgbotapi.Update, bot.Buffer)
		mux.Post(path, telegram.WebhookHandler(bot, updates, logger))
		logger.Info("webhook mode", zap.String("path", path))

		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case upd := <-updates:
					r.HandleUpdate(gctx, upd)
				}
			}
		})
	} else {
		if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			logger.Warn("delete webhook", zap.Error(err))
		}
		logger.Info("polling mode")
		g.Go(func() error {
			telegram.RunPolling(gctx, bot, logger, r.HandleUpdate)
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
