package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

// Notifier — фоновая сверка решений менеджера с отметками об уведомлении.
// Каждый цикл перечитывает все партиции целиком: таблица правится руками
// и никаких событий об изменениях не даёт.
type Notifier struct {
	store    domain.DecisionStore
	sender   domain.MessageSender
	interval time.Duration

	venueDates map[string]struct{}
	venueText  string

	log *zap.Logger
	now func() time.Time
}

type NotifierOptions struct {
	Interval   time.Duration
	VenueDates []string
	VenueText  string
}

func NewNotifier(store domain.DecisionStore, sender domain.MessageSender, opts NotifierOptions, log *zap.Logger) *Notifier {
	venues := make(map[string]struct{}, len(opts.VenueDates))
	for _, d := range opts.VenueDates {
		venues[d] = struct{}{}
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Notifier{
		store:      store,
		sender:     sender,
		interval:   interval,
		venueDates: venues,
		venueText:  opts.VenueText,
		log:        log,
		now:        time.Now,
	}
}

// Run крутится до отмены контекста: scan → sleep → scan.
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()
	for {
		n.RunCycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunCycle обходит все партиции один раз. Ошибка чтения одной партиции
// не прерывает обход остальных.
func (n *Notifier) RunCycle(ctx context.Context) {
	partitions, err := n.store.Partitions(ctx)
	if err != nil {
		n.log.Warn("list partitions failed", zap.Error(err))
		return
	}
	for _, p := range partitions {
		if err := n.scanPartition(ctx, p); err != nil {
			n.log.Warn("partition scan failed", zap.String("partition", p), zap.Error(err))
		}
	}
}

func (n *Notifier) scanPartition(ctx context.Context, partition string) error {
	records, err := n.store.Read(ctx, partition)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if !eligible(rec) {
			continue
		}
		if err := n.sender.SendText(rec.ChatID, n.decisionText(rec)); err != nil {
			// Отметку не пишем: следующий цикл попробует ещё раз.
			n.log.Warn("decision send failed",
				zap.String("partition", partition),
				zap.Int("row", rec.Row),
				zap.Int64("chat_id", rec.ChatID),
				zap.Error(err),
			)
			continue
		}
		if err := n.store.MarkNotified(ctx, partition, rec.Row, n.now()); err != nil {
			// Сообщение ушло, а отметка не записалась: на следующем
			// цикле возможен повтор. Принятая цена отсутствия транзакций.
			n.log.Error("mark notified failed",
				zap.String("partition", partition),
				zap.Int("row", rec.Row),
				zap.Error(err),
			)
			continue
		}
		n.log.Info("decision delivered",
			zap.String("partition", partition),
			zap.Int("row", rec.Row),
			zap.Int64("chat_id", rec.ChatID),
			zap.String("status", string(rec.Status)),
		)
	}
	return nil
}

// eligible: финальный статус, пустая отметка, валидный chat_id.
// Всё остальное — строки для ручного разбора, их просто пропускаем.
func eligible(rec domain.Record) bool {
	return rec.Status.Terminal() && rec.NotifiedAt == "" && rec.ChatID != 0
}

func (n *Notifier) decisionText(rec domain.Record) string {
	if rec.Status == domain.StatusRejected {
		return textRejected
	}
	text := textApproved
	if _, ok := n.venueDates[rec.Partition]; ok && n.venueText != "" {
		text += "\n\n" + n.venueText
	}
	return text
}
