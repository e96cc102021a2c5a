package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

// Шаги анкеты. Последовательность строгая: значение шага N попадает в
// черновик только после того, как заполнены все обязательные шаги до него.
type Step string

const (
	StepIdle     Step = "idle"
	StepDate     Step = "choose_date"
	StepTime     Step = "choose_time"
	StepName     Step = "subject_name"
	StepDOB      Step = "date_of_birth"
	StepAddress  Step = "residence_address"
	StepCity     Step = "city"
	StepPhone    Step = "phone"
	StepEmail    Step = "email"
	StepMinor    Step = "is_minor"
	StepGuardian Step = "guardian_name"
	StepPhoto    Step = "photo"
	StepConsent  Step = "consent"
	StepDone     Step = "done"
)

type Session struct {
	Step  Step
	Draft domain.Draft
}

// SessionStore — черновики по chat_id. Get создаёт пустую сессию,
// если её ещё нет.
type SessionStore interface {
	Get(chatID int64) *Session
	Clear(chatID int64)
}

type Input struct {
	Text        string
	PhotoFileID string
}

type Reply struct {
	Text    string
	Options []string
	Step    Step
	Done    bool
}

type IntakeOptions struct {
	ShootDates  []string
	TimeSlots   []string
	PhonePrefix string
	PhoneDigits int
}

// Intake ведёт пользователя по анкете: валидирует ответ, кладёт его в
// черновик, двигает шаг. Невалидный ввод не меняет ни шаг, ни черновик.
type Intake struct {
	sessions SessionStore
	apps     domain.ApplicationRepository
	photos   domain.PhotoUploader
	opts     IntakeOptions
	log      *zap.Logger
	now      func() time.Time
}

func NewIntake(sessions SessionStore, apps domain.ApplicationRepository, photos domain.PhotoUploader, opts IntakeOptions, log *zap.Logger) *Intake {
	return &Intake{
		sessions: sessions,
		apps:     apps,
		photos:   photos,
		opts:     opts,
		log:      log,
		now:      time.Now,
	}
}

func (i *Intake) Handle(ctx context.Context, chatID int64, in Input) Reply {
	text := strings.TrimSpace(in.Text)

	// Команды меню работают из любого шага. /start и «подати заявку»
	// безусловно сбрасывают текущий черновик.
	switch text {
	case "/start":
		i.sessions.Clear(chatID)
		return Reply{Text: textWelcome, Options: []string{BtnApply, BtnInfo}, Step: StepIdle}
	case BtnInfo:
		return Reply{Text: textInfo, Options: []string{BtnApply, BtnInfo}, Step: i.sessions.Get(chatID).Step}
	case BtnApply, BtnMore:
		i.sessions.Clear(chatID)
		s := i.sessions.Get(chatID)
		s.Step = StepDate
		return Reply{Text: textAskDate, Options: i.opts.ShootDates, Step: StepDate}
	case BtnFinish:
		i.sessions.Clear(chatID)
		return Reply{Text: textBye, Options: []string{BtnApply, BtnInfo}, Step: StepIdle}
	}

	s := i.sessions.Get(chatID)
	switch s.Step {
	case StepIdle:
		return Reply{Text: textWelcome, Options: []string{BtnApply, BtnInfo}, Step: StepIdle}

	case StepDate:
		if !contains(i.opts.ShootDates, text) {
			return Reply{Text: textAskDate, Options: i.opts.ShootDates, Step: StepDate}
		}
		s.Draft.ShootDate = text
		s.Step = StepTime
		return Reply{Text: "Дата: " + text + " ✅\n\n" + textAskTime, Options: i.timeOptions(), Step: StepTime}

	case StepTime:
		if text == BtnBack {
			s.Step = StepDate
			return Reply{Text: textAskDate, Options: i.opts.ShootDates, Step: StepDate}
		}
		if !contains(i.opts.TimeSlots, text) {
			return Reply{Text: textAskTime, Options: i.timeOptions(), Step: StepTime}
		}
		s.Draft.ShootTime = text
		s.Step = StepName
		return Reply{Text: "Час: " + text + " ✅\n\n" + textAskName, Step: StepName}

	case StepName:
		if !IsLatinText(text) {
			return Reply{Text: textBadName, Step: StepName}
		}
		dup, err := i.apps.NameExists(ctx, s.Draft.ShootDate, text)
		if err != nil {
			// Проверка совещательная: при недоступном хранилище
			// пропускаем, менеджер разрулит дубликат вручную.
			i.log.Warn("duplicate check failed", zap.String("date", s.Draft.ShootDate), zap.Error(err))
		}
		if dup {
			return Reply{Text: textDuplicate, Step: StepName}
		}
		s.Draft.ModelName = text
		s.Step = StepDOB
		return Reply{Text: textAskDOB, Step: StepDOB}

	case StepDOB:
		if !IsValidDate(text) {
			return Reply{Text: textBadDOB, Step: StepDOB}
		}
		s.Draft.DateOfBirth = text
		s.Step = StepAddress
		return Reply{Text: textAskAddress, Options: []string{BtnSkip}, Step: StepAddress}

	case StepAddress:
		if IsSkipToken(text) {
			s.Draft.Address = ""
			s.Draft.City = ""
			s.Step = StepPhone
			return Reply{Text: textAskPhone, Step: StepPhone}
		}
		if !IsLatinText(text) {
			return Reply{Text: textBadAddress, Options: []string{BtnSkip}, Step: StepAddress}
		}
		s.Draft.Address = text
		s.Step = StepCity
		return Reply{Text: textAskCity, Step: StepCity}

	case StepCity:
		if !IsLatinText(text) {
			return Reply{Text: textBadCity, Step: StepCity}
		}
		s.Draft.City = text
		s.Step = StepPhone
		return Reply{Text: textAskPhone, Step: StepPhone}

	case StepPhone:
		if !IsValidPhone(text, i.opts.PhonePrefix, i.opts.PhoneDigits) {
			return Reply{Text: textBadPhone, Step: StepPhone}
		}
		s.Draft.Phone = strings.ReplaceAll(text, " ", "")
		s.Step = StepEmail
		return Reply{Text: textAskEmail, Step: StepEmail}

	case StepEmail:
		if !IsValidEmail(text) {
			return Reply{Text: textBadEmail, Step: StepEmail}
		}
		s.Draft.Email = text
		s.Step = StepMinor
		return Reply{Text: textAskMinor, Options: []string{BtnYes, BtnNo}, Step: StepMinor}

	case StepMinor:
		switch text {
		case BtnYes:
			s.Draft.IsMinor = true
			s.Step = StepGuardian
			return Reply{Text: textAskGuardian, Step: StepGuardian}
		case BtnNo:
			s.Draft.IsMinor = false
			s.Draft.Guardian = ""
			s.Step = StepPhoto
			return Reply{Text: textAskPhoto, Step: StepPhoto}
		}
		return Reply{Text: textAskMinor, Options: []string{BtnYes, BtnNo}, Step: StepMinor}

	case StepGuardian:
		if !IsLatinText(text) {
			return Reply{Text: textBadGuardian, Step: StepGuardian}
		}
		s.Draft.Guardian = text
		s.Step = StepPhoto
		return Reply{Text: textAskPhoto, Step: StepPhoto}

	case StepPhoto:
		if in.PhotoFileID == "" {
			return Reply{Text: textNeedPhoto, Step: StepPhoto}
		}
		ref, err := i.photos.Upload(ctx, in.PhotoFileID, photoFilename(s.Draft))
		if err != nil {
			i.log.Error("photo upload failed", zap.Int64("chat_id", chatID), zap.Error(err))
			return Reply{Text: textUploadFailed, Step: StepPhoto}
		}
		s.Draft.PhotoRef = ref
		s.Step = StepConsent
		return Reply{Text: textAskConsent, Options: []string{BtnConsent}, Step: StepConsent}

	case StepConsent:
		if text != BtnConsent {
			return Reply{Text: textAskConsent, Options: []string{BtnConsent}, Step: StepConsent}
		}
		s.Draft.Consent = true
		app := domain.Application{Draft: s.Draft, ChatID: chatID, SubmittedAt: i.now()}
		if err := i.apps.Append(ctx, app); err != nil {
			// Сессию не чистим: заполненный черновик можно отправить повторно.
			i.log.Error("commit failed", zap.Int64("chat_id", chatID), zap.Error(err))
			return Reply{Text: textCommitFailed, Options: []string{BtnConsent}, Step: StepConsent}
		}
		i.sessions.Clear(chatID)
		i.log.Info("application committed",
			zap.Int64("chat_id", chatID),
			zap.String("date", app.ShootDate),
			zap.String("time", app.ShootTime),
		)
		return Reply{Text: textFinal, Options: []string{BtnMore, BtnFinish}, Step: StepDone, Done: true}
	}

	return Reply{Text: textWelcome, Options: []string{BtnApply, BtnInfo}, Step: s.Step}
}

func (i *Intake) timeOptions() []string {
	opts := make([]string, 0, len(i.opts.TimeSlots)+1)
	opts = append(opts, i.opts.TimeSlots...)
	return append(opts, BtnBack)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_]+`)

func photoFilename(d domain.Draft) string {
	safe := strings.Trim(unsafeFilenameRe.ReplaceAllString(d.ModelName, "_"), "_")
	return d.ShootDate + "_" + d.ShootTime + "_" + safe + ".jpg"
}
