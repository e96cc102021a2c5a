package usecase

import (
	"regexp"
	"strings"
	"time"
)

// Валидаторы полей заявки. Имена и адреса — только латиница, данные
// уходят в юридический документ на английском.

var (
	latinTextRe = regexp.MustCompile(`^[A-Za-z0-9\s\-.',/#]+$`)
	emailRe     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	dateRe      = regexp.MustCompile(`^\d{2}([./])\d{2}([./])\d{4}$`)
)

// IsLatinText — ограниченный класс символов: латиница, цифры, пробелы
// и небольшой набор пунктуации.
func IsLatinText(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && latinTextRe.MatchString(s)
}

// IsValidDate принимает строго DD.MM.YYYY или DD/MM/YYYY и проверяет,
// что дата существует в календаре.
func IsValidDate(s string) bool {
	s = strings.TrimSpace(s)
	m := dateRe.FindStringSubmatch(s)
	if m == nil || m[1] != m[2] {
		return false
	}
	layout := "02.01.2006"
	if m[1] == "/" {
		layout = "02/01/2006"
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// IsValidPhone — фиксированный код страны и ровно digits цифр после него,
// без разделителей.
func IsValidPhone(s, prefix string, digits int) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := s[len(prefix):]
	if len(rest) != digits {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// skipTokens — варианты написания «пропустить», включая латинскую i
// вместо кириллической і.
var skipTokens = map[string]struct{}{
	"далі":       {},
	"далi":       {},
	"дали":       {},
	"пропустити": {},
	"skip":       {},
}

// IsSkipToken распознаёт явный отказ от необязательного шага.
func IsSkipToken(s string) bool {
	_, ok := skipTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
