package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config — вся конфигурация процесса. Источники: .env (если есть),
// переменные окружения, значения по умолчанию.
type Config struct {
	BotToken           string
	SheetID            string
	DriveFolderID      string
	ServiceAccountPath string

	ShootDates []string
	TimeSlots  []string

	PhonePrefix string
	PhoneDigits int

	NotifyInterval time.Duration
	RequestTimeout time.Duration

	// Даты, для которых в сообщение о подтверждении добавляется
	// информация о локации.
	VenueDates []string
	VenueText  string

	AdminChatIDs []int64
	SQLiteDSN    string
	LogLevel     string
}

func Load() (*Config, error) {
	// .env необязателен, в проде берём окружение как есть
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "service_account.json")
	v.SetDefault("SHOOT_DATES", "10.01.2026,11.01.2026,13.01.2026,14.01.2026,17.01.2026,18.01.2026,20.01.2026,21.01.2026")
	v.SetDefault("TIME_SLOTS", "10:20,11:00,11:40,12:30,13:20")
	v.SetDefault("PHONE_PREFIX", "380")
	v.SetDefault("PHONE_DIGITS", 9)
	v.SetDefault("NOTIFY_INTERVAL", "60s")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("SQLITE_DSN", "casting.db")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		BotToken:           strings.TrimSpace(v.GetString("BOT_TOKEN")),
		SheetID:            strings.TrimSpace(v.GetString("GOOGLE_SHEET_ID")),
		DriveFolderID:      strings.TrimSpace(v.GetString("GOOGLE_DRIVE_FOLDER_ID")),
		ServiceAccountPath: strings.TrimSpace(v.GetString("GOOGLE_SERVICE_ACCOUNT_JSON")),
		ShootDates:         splitList(v.GetString("SHOOT_DATES")),
		TimeSlots:          splitList(v.GetString("TIME_SLOTS")),
		PhonePrefix:        v.GetString("PHONE_PREFIX"),
		PhoneDigits:        v.GetInt("PHONE_DIGITS"),
		NotifyInterval:     v.GetDuration("NOTIFY_INTERVAL"),
		RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		VenueDates:         splitList(v.GetString("VENUE_DATES")),
		VenueText:          v.GetString("VENUE_TEXT"),
		AdminChatIDs:       parseChatIDs(v.GetString("ADMIN_CHAT_IDS")),
		SQLiteDSN:          v.GetString("SQLITE_DSN"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is empty")
	}
	if cfg.SheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is empty")
	}
	if len(cfg.ShootDates) == 0 {
		return nil, fmt.Errorf("SHOOT_DATES is empty")
	}
	if len(cfg.TimeSlots) == 0 {
		return nil, fmt.Errorf("TIME_SLOTS is empty")
	}
	return cfg, nil
}

func splitList(raw string) []string {
	out := make([]string, 0, 8)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseChatIDs(raw string) []int64 {
	ids := make([]int64, 0, 4)
	for _, part := range splitList(raw) {
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
