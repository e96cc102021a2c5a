package sheets

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

// Обязательные колонки листа. Порядок — для новых листов; в уже
// существующих ориентируемся только на имена из строки заголовков,
// лишние колонки менеджера не трогаем.
var Headers = []string{
	"Nameprint", "DateSigned", "ShootDate", "ShootTime", "ShootPlace", "ShootState",
	"ModelName", "DateOfBirth", "ResidenceAddress", "City", "State", "Country",
	"ZipCode", "Phone", "Email", "GuardianName", "Photo",
	"TelegramChatId", "Status", "NotifiedAt",
}

// Имя партиции — дата съёмки как её видит пользователь.
var partitionTitleRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

func isPartitionTitle(title string) bool {
	return partitionTitleRe.MatchString(title)
}

// schema — колонка по имени заголовка, 0-based.
type schema map[string]int

// buildSchema строит карту колонок по фактической строке заголовков и
// возвращает список обязательных колонок, которых в ней нет.
func buildSchema(header []string) (schema, []string) {
	sc := make(schema, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if _, ok := sc[name]; !ok {
			sc[name] = i
		}
	}
	var missing []string
	for _, h := range Headers {
		if _, ok := sc[h]; !ok {
			missing = append(missing, h)
		}
	}
	return sc, missing
}

func (sc schema) width() int {
	max := 0
	for _, i := range sc {
		if i+1 > max {
			max = i + 1
		}
	}
	return max
}

// FixedFields — постоянные значения документа, одинаковые для всех заявок.
type FixedFields struct {
	Nameprint  string
	ShootPlace string
	ShootState string
	Country    string
}

// applicationRow раскладывает заявку по колонкам фактической схемы листа.
func applicationRow(sc schema, fixed FixedFields, app domain.Application) []string {
	row := make([]string, sc.width())
	set := func(col, val string) {
		if i, ok := sc[col]; ok {
			row[i] = val
		}
	}
	shootDate := domain.ToUSDate(app.ShootDate)
	set("Nameprint", fixed.Nameprint)
	set("DateSigned", shootDate)
	set("ShootDate", shootDate)
	set("ShootTime", app.ShootTime)
	set("ShootPlace", fixed.ShootPlace)
	set("ShootState", fixed.ShootState)
	set("ModelName", app.ModelName)
	set("DateOfBirth", domain.ToUSDate(app.DateOfBirth))
	set("ResidenceAddress", app.Address)
	set("City", app.City)
	set("Country", fixed.Country)
	set("Phone", app.Phone)
	set("Email", app.Email)
	set("GuardianName", app.Guardian)
	set("Photo", app.PhotoRef)
	set("TelegramChatId", strconv.FormatInt(app.ChatID, 10))
	set("Status", string(domain.StatusPending))
	set("NotifiedAt", "")
	return row
}

// parseRecord читает строку листа. Кривые данные (нечисловой chat_id,
// незнакомый статус) не ошибка: строка просто не пройдёт отбор цикла
// уведомлений и останется менеджеру.
func parseRecord(sc schema, partition string, rowNum int, row []string) domain.Record {
	cell := func(col string) string {
		i, ok := sc[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	chatID, _ := strconv.ParseInt(cell("TelegramChatId"), 10, 64)
	return domain.Record{
		Partition:  partition,
		Row:        rowNum,
		ModelName:  cell("ModelName"),
		ChatID:     chatID,
		Status:     domain.ParseDecision(cell("Status")),
		NotifiedAt: cell("NotifiedAt"),
	}
}

// colLetter — A1-имя колонки по 0-based индексу.
func colLetter(idx int) string {
	name := ""
	for idx >= 0 {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
	}
	return name
}
