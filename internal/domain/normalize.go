package domain

import "strings"

// NormalizeName приводит имя к виду для сравнения дубликатов:
// внутренние пробелы схлопываются, регистр опускается.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ParseDecision распознаёт статус из ячейки таблицы. Колонку правит
// человек, поэтому терпим близкие синонимы и регистр.
func ParseDecision(raw string) DecisionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "approve", "ok":
		return StatusApproved
	case "rejected", "reject", "declined":
		return StatusRejected
	case "pending":
		return StatusPending
	default:
		return ""
	}
}

// ToUSDate переводит DD.MM.YYYY (или DD/MM/YYYY) в MM/DD/YYYY —
// формат дат в итоговом документе.
func ToUSDate(d string) string {
	sep := "."
	if strings.Contains(d, "/") {
		sep = "/"
	}
	parts := strings.Split(d, sep)
	if len(parts) != 3 {
		return d
	}
	return parts[1] + "/" + parts[0] + "/" + parts[2]
}
