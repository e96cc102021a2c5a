package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

// Store — заявки в Google Sheets: один лист на дату съёмки.
// Таблица правится менеджером руками, поэтому никаких транзакций:
// только чтение целиком, append строки и запись одной ячейки.
type Store struct {
	svc     *sheets.Service
	sheetID string
	fixed   FixedFields
	timeout time.Duration
	log     *zap.Logger
}

type Config struct {
	SpreadsheetID string
	Fixed         FixedFields
	Timeout       time.Duration
}

func New(ctx context.Context, credentialsFile string, cfg Config, log *zap.Logger) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Store{
		svc:     svc,
		sheetID: cfg.SpreadsheetID,
		fixed:   cfg.Fixed,
		timeout: timeout,
		log:     log,
	}, nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// EnsurePartitions создаёт листы для дат и выравнивает их схемы.
// Вызывается на старте; ошибка одной даты не мешает остальным.
func (s *Store) EnsurePartitions(ctx context.Context, dates []string) {
	for _, d := range dates {
		if _, err := s.ensurePartition(ctx, d); err != nil {
			s.log.Warn("ensure partition failed", zap.String("partition", d), zap.Error(err))
		}
	}
}

// ensurePartition гарантирует существование листа и полноту его схемы:
// недостающие обязательные колонки дописываются в конец строки
// заголовков, существующие не переставляются.
func (s *Store) ensurePartition(ctx context.Context, title string) (schema, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	spreadsheet, err := s.svc.Spreadsheets.Get(s.sheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: get spreadsheet: %v", domain.ErrStoreUnavailable, err)
	}
	found := false
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			found = true
			break
		}
	}
	if !found {
		req := &sheets.BatchUpdateSpreadsheetRequest{Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{
				Title: title,
				GridProperties: &sheets.GridProperties{
					RowCount:       2000,
					ColumnCount:    int64(len(Headers) + 5),
					FrozenRowCount: 1,
				},
			}},
		}}}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.sheetID, req).Context(ctx).Do(); err != nil {
			return nil, fmt.Errorf("%w: add sheet %q: %v", domain.ErrStoreUnavailable, title, err)
		}
	}

	header, err := s.readHeader(ctx, title)
	if err != nil {
		return nil, err
	}
	sc, missing := buildSchema(header)
	if len(missing) == 0 && len(header) > 0 {
		return sc, nil
	}

	// пустой лист получает эталонную шапку, частичной дописываем хвост
	start := len(header)
	values := make([]interface{}, 0, len(missing))
	for _, m := range missing {
		sc[m] = start + len(values)
		values = append(values, m)
	}
	rng := fmt.Sprintf("'%s'!%s1", title, colLetter(start))
	_, err = s.svc.Spreadsheets.Values.Update(s.sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: write header %q: %v", domain.ErrStoreUnavailable, title, err)
	}
	return sc, nil
}

func (s *Store) readHeader(ctx context.Context, title string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, fmt.Sprintf("'%s'!1:1", title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read header %q: %v", domain.ErrStoreUnavailable, title, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

// NameExists — совещательная проверка дубликата имени в партиции даты.
func (s *Store) NameExists(ctx context.Context, date, name string) (bool, error) {
	sc, err := s.ensurePartition(ctx, date)
	if err != nil {
		return false, err
	}
	col, ok := sc["ModelName"]
	if !ok {
		return false, fmt.Errorf("%w: ModelName in %q", domain.ErrSchemaMismatch, date)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	letter := colLetter(col)
	rng := fmt.Sprintf("'%s'!%s2:%s", date, letter, letter)
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, rng).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("%w: read names %q: %v", domain.ErrStoreUnavailable, date, err)
	}
	target := domain.NormalizeName(name)
	for _, row := range resp.Values {
		for _, cell := range toStrings(row) {
			if cell != "" && domain.NormalizeName(cell) == target {
				return true, nil
			}
		}
	}
	return false, nil
}

// Append добавляет ровно одну строку заявки со статусом pending.
func (s *Store) Append(ctx context.Context, app domain.Application) error {
	sc, err := s.ensurePartition(ctx, app.ShootDate)
	if err != nil {
		return err
	}
	row := applicationRow(sc, s.fixed, app)
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	_, err = s.svc.Spreadsheets.Values.Append(s.sheetID, fmt.Sprintf("'%s'!A1", app.ShootDate), &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: append to %q: %v", domain.ErrStoreUnavailable, app.ShootDate, err)
	}
	return nil
}

// Partitions перечисляет все листы-даты, включая добавленные менеджером
// мимо конфигурации.
func (s *Store) Partitions(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	spreadsheet, err := s.svc.Spreadsheets.Get(s.sheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: get spreadsheet: %v", domain.ErrStoreUnavailable, err)
	}
	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && isPartitionTitle(sh.Properties.Title) {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

// Read возвращает все строки партиции. Схема берётся из фактической
// шапки; без обязательных колонок партиция считается неисправной.
func (s *Store) Read(ctx context.Context, partition string) ([]domain.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, fmt.Sprintf("'%s'", partition)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", domain.ErrStoreUnavailable, partition, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	sc, missing := buildSchema(toStrings(resp.Values[0]))
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q lacks %v", domain.ErrSchemaMismatch, partition, missing)
	}
	records := make([]domain.Record, 0, len(resp.Values)-1)
	for i := 1; i < len(resp.Values); i++ {
		records = append(records, parseRecord(sc, partition, i+1, toStrings(resp.Values[i])))
	}
	return records, nil
}

// MarkNotified пишет момент доставки решения в одну ячейку строки.
func (s *Store) MarkNotified(ctx context.Context, partition string, row int, at time.Time) error {
	header, err := s.readHeader(ctx, partition)
	if err != nil {
		return err
	}
	sc, _ := buildSchema(header)
	col, ok := sc["NotifiedAt"]
	if !ok {
		return fmt.Errorf("%w: NotifiedAt in %q", domain.ErrSchemaMismatch, partition)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rng := fmt.Sprintf("'%s'!%s%s", partition, colLetter(col), strconv.Itoa(row))
	_, err = s.svc.Spreadsheets.Values.Update(s.sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{{at.UTC().Format(time.RFC3339)}},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: mark %q row %d: %v", domain.ErrStoreUnavailable, partition, row, err)
	}
	return nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
