package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	telegramAdapter "github.com/katyavamnada-beep/casting-bot/internal/adapter/telegram"
	"github.com/katyavamnada-beep/casting-bot/internal/config"
	"github.com/katyavamnada-beep/casting-bot/internal/domain"
	"github.com/katyavamnada-beep/casting-bot/internal/infra/drive"
	"github.com/katyavamnada-beep/casting-bot/internal/infra/memory"
	"github.com/katyavamnada-beep/casting-bot/internal/infra/sheets"
	sqliteRepo "github.com/katyavamnada-beep/casting-bot/internal/infra/sqlite"
	"github.com/katyavamnada-beep/casting-bot/internal/logger"
	"github.com/katyavamnada-beep/casting-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, telegramAdapter.BotClient(cfg.RequestTimeout))
	if err != nil {
		zlog.Fatal("bot init failed", zap.Error(err))
	}
	bot.Debug = false
	zlog.Info("authorized", zap.String("username", bot.Self.UserName))

	store, err := sheets.New(ctx, cfg.ServiceAccountPath, sheets.Config{
		SpreadsheetID: cfg.SheetID,
		Fixed: sheets.FixedFields{
			Nameprint:  "Stanislav Maspanov",
			ShootPlace: "Ukraine",
			ShootState: "Kyiv",
			Country:    "Ukraine",
		},
		Timeout: cfg.RequestTimeout,
	}, zlog)
	if err != nil {
		zlog.Fatal("sheets init failed", zap.Error(err))
	}
	// листы на сконфигурированные даты создаём заранее, ошибки не фатальны
	store.EnsurePartitions(ctx, cfg.ShootDates)

	uploader, err := drive.New(ctx, cfg.ServiceAccountPath, cfg.DriveFolderID, bot, cfg.RequestTimeout, zlog)
	if err != nil {
		zlog.Fatal("drive init failed", zap.Error(err))
	}

	// локальная аналитика на sqlite, при недоступном файле живём в памяти
	var funnelRepo usecase.FunnelRepository
	var registry domain.ApplicantRegistry
	var statRepo usecase.BroadcastStatRepository
	if fr, err := sqliteRepo.NewFunnelRepo(cfg.SQLiteDSN); err == nil {
		funnelRepo = fr
	} else {
		zlog.Warn("funnel sqlite init failed, using memory", zap.Error(err))
		funnelRepo = memory.NewFunnelRepo()
	}
	if reg, err := sqliteRepo.NewRegistry(cfg.SQLiteDSN); err == nil {
		registry = reg
	} else {
		zlog.Warn("registry sqlite init failed, using memory", zap.Error(err))
		registry = memory.NewRegistry()
	}
	if sr, err := sqliteRepo.NewBroadcastStatRepo(cfg.SQLiteDSN); err == nil {
		statRepo = sr
	} else {
		zlog.Warn("broadcast stats sqlite init failed, using memory", zap.Error(err))
		statRepo = memory.NewBroadcastStatRepo()
	}

	sessions := memory.NewSessionStore()
	intake := usecase.NewIntake(sessions, store, uploader, usecase.IntakeOptions{
		ShootDates:  cfg.ShootDates,
		TimeSlots:   cfg.TimeSlots,
		PhonePrefix: cfg.PhonePrefix,
		PhoneDigits: cfg.PhoneDigits,
	}, zlog)

	sender := telegramAdapter.NewSender(bot)
	funnel := usecase.NewFunnelUsecase(funnelRepo)
	broadcastUC := usecase.NewBroadcastUsecase(registry, sender, statRepo)

	notifier := usecase.NewNotifier(store, sender, usecase.NotifierOptions{
		Interval:   cfg.NotifyInterval,
		VenueDates: cfg.VenueDates,
		VenueText:  cfg.VenueText,
	}, zlog)
	go notifier.Run(ctx)

	handler := telegramAdapter.NewHandler(bot, intake, registry, broadcastUC, funnel, cfg.AdminChatIDs, zlog)
	handler.Run(ctx)
}
