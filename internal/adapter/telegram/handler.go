package telegram

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
	"github.com/katyavamnada-beep/casting-bot/internal/usecase"
)

// Окно long-poll у GetUpdates, секунды.
const pollTimeoutSec = 30

// BotClient — HTTP-клиент для Bot API с верхней границей на запрос:
// зависший Send не должен останавливать цикл обновлений или уведомлений.
// Таймаут держим выше окна long-poll, иначе GetUpdates рвётся до ответа.
func BotClient(requestTimeout time.Duration) *http.Client {
	floor := (pollTimeoutSec + 15) * time.Second
	if requestTimeout < floor {
		requestTimeout = floor
	}
	return &http.Client{Timeout: requestTimeout}
}

// Handler читает обновления Telegram в одной горутине: порядок сообщений
// внутри чата сохраняется, шаги анкеты не гоняются между собой.
type Handler struct {
	bot         *tgbotapi.BotAPI
	intake      *usecase.Intake
	registry    domain.ApplicantRegistry
	broadcastUC *usecase.BroadcastUsecase
	funnel      *usecase.FunnelUsecase
	adminIDs    map[int64]struct{}

	bcastSessions map[int64]*usecase.BroadcastSession
	logger        *zap.Logger
}

func NewHandler(bot *tgbotapi.BotAPI, intake *usecase.Intake, registry domain.ApplicantRegistry, broadcastUC *usecase.BroadcastUsecase, funnel *usecase.FunnelUsecase, adminIDs []int64, logger *zap.Logger) *Handler {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Handler{
		bot:           bot,
		intake:        intake,
		registry:      registry,
		broadcastUC:   broadcastUC,
		funnel:        funnel,
		adminIDs:      admins,
		bcastSessions: make(map[int64]*usecase.BroadcastSession),
		logger:        logger,
	}
}

func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSec
	updates := h.bot.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		h.bot.StopReceivingUpdates()
	}()
	for update := range updates {
		if update.Message == nil && update.CallbackQuery == nil {
			continue
		}
		var chatID int64
		var text string
		var photoFileID string
		if update.Message != nil {
			chatID = update.Message.Chat.ID
			text = update.Message.Text
			if len(update.Message.Photo) > 0 {
				photoFileID = update.Message.Photo[len(update.Message.Photo)-1].FileID
			}
		} else {
			chatID = update.CallbackQuery.Message.Chat.ID
			text = update.CallbackQuery.Data
			// убрать «часики» на кнопке
			_, _ = h.bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, ""))
		}

		if h.isAdmin(chatID) {
			h.handleAdmin(chatID, text, update)
			continue
		}
		if err := h.registry.Save(chatID); err != nil {
			h.logger.Warn("registry save failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}

		reply := h.intake.Handle(ctx, chatID, usecase.Input{Text: text, PhotoFileID: photoFileID})
		h.trackFunnel(chatID, reply.Step)
		h.sendReply(chatID, reply)
	}
}

func (h *Handler) handleAdmin(chatID int64, text string, update tgbotapi.Update) {
	switch text {
	case "/admin", "/start":
		msg := tgbotapi.NewMessage(chatID, "Админ-меню")
		msg.ReplyMarkup = inlineKeyboard([]string{"Создать рассылку", "Статистика", "Воронка"})
		_, _ = h.bot.Send(msg)
		h.logger.Info("admin opened menu", zap.Int64("chat_id", chatID))
		return
	case "Создать рассылку":
		s := h.getBSession(chatID)
		h.sendText(chatID, h.broadcastUC.Start(s))
		h.logger.Info("broadcast start", zap.Int64("chat_id", chatID))
		return
	case "Статистика":
		h.sendText(chatID, h.broadcastUC.StatsSummary(5))
		return
	case "Воронка":
		labels, values := h.funnel.GraphData()
		if err := h.sendFunnelChart(chatID, labels, values); err != nil {
			h.logger.Error("funnel chart failed", zap.Error(err))
			h.sendText(chatID, h.funnel.Chart())
		}
		return
	}

	s := h.getBSession(chatID)
	if m := update.Message; m != nil && len(m.Photo) > 0 && s.State == usecase.BStateEnter {
		ph := m.Photo[len(m.Photo)-1]
		msg, opts := h.broadcastUC.ReceivePhoto(s, ph.FileID, m.Caption)
		h.sendTextWithKeyboard(chatID, msg, opts)
		return
	}
	switch s.State {
	case usecase.BStateEnter:
		msg, opts, _ := h.broadcastUC.ReceiveText(s, text)
		h.sendTextWithKeyboard(chatID, msg, opts)
	case usecase.BStateConfirm:
		msg, _ := h.broadcastUC.ConfirmSend(s, text)
		h.sendText(chatID, msg)
		h.logger.Info("broadcast confirm", zap.Int64("chat_id", chatID))
	}
}

func (h *Handler) isAdmin(chatID int64) bool {
	if len(h.adminIDs) == 0 {
		return false
	}
	_, ok := h.adminIDs[chatID]
	return ok
}

func (h *Handler) trackFunnel(chatID int64, step usecase.Step) {
	if h.funnel != nil {
		h.funnel.Reach(chatID, step)
	}
}

func (h *Handler) getBSession(chatID int64) *usecase.BroadcastSession {
	if s, ok := h.bcastSessions[chatID]; ok {
		return s
	}
	s := &usecase.BroadcastSession{State: usecase.BStateIdle}
	h.bcastSessions[chatID] = s
	return s
}

func (h *Handler) sendReply(chatID int64, r usecase.Reply) {
	if len(r.Options) > 0 {
		h.sendTextWithKeyboard(chatID, r.Text, r.Options)
		return
	}
	h.sendText(chatID, r.Text)
}

func (h *Handler) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendTextWithKeyboard(chatID int64, text string, opts []string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(opts) > 0 {
		msg.ReplyMarkup = inlineKeyboard(opts)
	}
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func inlineKeyboard(opts []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(o, o),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Sender — реализация отправителя для юзкейсов и цикла уведомлений.
type Sender struct{ bot *tgbotapi.BotAPI }

func NewSender(bot *tgbotapi.BotAPI) *Sender { return &Sender{bot: bot} }

func (s *Sender) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.bot.Send(msg)
	return err
}

func (s *Sender) SendPhoto(chatID int64, fileID string, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	_, err := s.bot.Send(photo)
	return err
}

func (h *Handler) sendFunnelChart(chatID int64, labels []string, values []int) error {
	bars := make([]chart.Value, 0, len(labels))
	maxVal := 0
	for i := range labels {
		v := values[i]
		if v > maxVal {
			maxVal = v
		}
		bars = append(bars, chart.Value{Value: float64(v), Label: labels[i]})
	}
	// при нулевых значениях рендер падает с invalid data range
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}
	graph := chart.BarChart{
		Width:    1100,
		Height:   600,
		BarWidth: 56,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}
	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return err
	}
	fname := "funnel_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".png"
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: fname, Bytes: buf.Bytes()})
	_, err := h.bot.Send(photo)
	return err
}
