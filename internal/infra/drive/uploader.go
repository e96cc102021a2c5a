package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

// Uploader перекладывает фото из Telegram в папку Google Drive и
// возвращает ссылку для менеджера. Без настроенной папки работает
// вырожденно: ссылкой служит telegram file_id.
type Uploader struct {
	svc      *drive.Service
	bot      *tgbotapi.BotAPI
	folderID string
	httpc    *http.Client
	timeout  time.Duration
	log      *zap.Logger
}

func New(ctx context.Context, credentialsFile, folderID string, bot *tgbotapi.BotAPI, timeout time.Duration, log *zap.Logger) (*Uploader, error) {
	var svc *drive.Service
	if folderID != "" {
		var err error
		svc, err = drive.NewService(ctx,
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(drive.DriveScope),
		)
		if err != nil {
			return nil, fmt.Errorf("drive service: %w", err)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Uploader{
		svc:      svc,
		bot:      bot,
		folderID: folderID,
		httpc:    &http.Client{Timeout: timeout},
		timeout:  timeout,
		log:      log,
	}, nil
}

func (u *Uploader) Upload(ctx context.Context, fileID, filename string) (string, error) {
	if u.folderID == "" || u.svc == nil {
		return fileID, nil
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	body, err := u.download(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer body.Close()

	created, err := u.svc.Files.Create(&drive.File{
		Name:    uniqueName(filename),
		Parents: []string{u.folderID},
	}).Media(body).Fields("id", "webViewLink").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	// ссылка «доступно всем, у кого есть линк»; не критично, если не вышло
	_, err = u.svc.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		u.log.Warn("drive permission failed", zap.String("file_id", created.Id), zap.Error(err))
	}

	if created.WebViewLink != "" {
		return created.WebViewLink, nil
	}
	return created.Id, nil
}

func (u *Uploader) download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	f, err := u.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get telegram file: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Link(u.bot.Token), nil)
	if err != nil {
		return nil, err
	}
	resp, err := u.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download telegram file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download telegram file: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// uniqueName — суффикс против коллизий одинаковых имён в папке.
func uniqueName(filename string) string {
	base := strings.TrimSuffix(filename, ".jpg")
	return base + "_" + uuid.NewString()[:8] + ".jpg"
}
