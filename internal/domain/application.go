package domain

import (
	"context"
	"time"
)

// Draft — черновик заявки, заполняется пошагово в рамках одной сессии.
// Даты храним как ввёл пользователь (DD.MM.YYYY), в формат таблицы
// переводим только при записи.
type Draft struct {
	ShootDate   string
	ShootTime   string
	ModelName   string
	DateOfBirth string
	Address     string
	City        string
	Phone       string
	Email       string
	IsMinor     bool
	Guardian    string
	PhotoRef    string
	Consent     bool
}

// Application — завершённый черновик вместе с данными отправителя,
// готовый к записи в таблицу.
type Application struct {
	Draft
	ChatID      int64
	SubmittedAt time.Time
}

type DecisionStatus string

const (
	StatusPending  DecisionStatus = "pending"
	StatusApproved DecisionStatus = "approved"
	StatusRejected DecisionStatus = "rejected"
)

// Record — строка заявки, прочитанная из партиции. Row — номер строки
// листа (1-based), нужен для точечной записи отметки об уведомлении.
type Record struct {
	Partition  string
	Row        int
	ModelName  string
	ChatID     int64
	Status     DecisionStatus
	NotifiedAt string
}

// Terminal сообщает, принято ли по заявке финальное решение.
func (s DecisionStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ApplicationRepository — внешнее хранилище заявок (Google Sheets).
type ApplicationRepository interface {
	// NameExists — проверка дубликата по нормализованному имени в партиции даты.
	// Совещательная: хранилище не даёт блокировок, гонка двух одинаковых имён
	// разрешается менеджером вручную.
	NameExists(ctx context.Context, date, name string) (bool, error)
	// Append добавляет ровно одну строку со статусом pending и пустой
	// отметкой об уведомлении. Существующие строки не трогает.
	Append(ctx context.Context, app Application) error
}

// DecisionStore — чтение решений и запись отметок для цикла уведомлений.
type DecisionStore interface {
	Partitions(ctx context.Context) ([]string, error)
	Read(ctx context.Context, partition string) ([]Record, error)
	MarkNotified(ctx context.Context, partition string, row int, at time.Time) error
}

// PhotoUploader загружает фото во внешнее файловое хранилище и
// возвращает ссылку для менеджера.
type PhotoUploader interface {
	Upload(ctx context.Context, fileID, filename string) (string, error)
}

// MessageSender — абстракция отправки сообщений (реализуется адаптером Telegram).
type MessageSender interface {
	SendText(chatID int64, text string) error
}

// ApplicantRegistry — локальный реестр чатов для рассылок.
type ApplicantRegistry interface {
	Save(chatID int64) error
	ListChatIDs() ([]int64, error)
}
