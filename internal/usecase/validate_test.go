package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLatinText(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"Ivan Petrenko", true},
		{"Anna I. Ivanova", true},
		{"O'Brien-Smith, Jr.", true},
		{"12/4 Main St. #3", true},
		{"Іван Петренко", false},
		{"", false},
		{"   ", false},
		{"name@mail", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, IsLatinText(tt.in), "in=%q", tt.in)
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"17.05.1994", true},
		{"17/05/1994", true},
		{"01.01.2000", true},
		{"31.02.1994", false}, // нет такой даты
		{"17.05.94", false},
		{"1994.05.17", false},
		{"17-05-1994", false},
		{"17.05/1994", false}, // разделители разные
		{"7.5.1994", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, IsValidDate(tt.in), "in=%q", tt.in)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"380931111111", true},
		{"380 93 111 11 11", true}, // пробелы убираем до проверки
		{"38093111111", false},     // мало цифр
		{"3809311111111", false},
		{"+380931111111", false},
		{"38093111111a", false},
		{"0931111111", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, IsValidPhone(tt.in, "380", 9), "in=%q", tt.in)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("name@example.com"))
	assert.True(t, IsValidEmail("a.b+c@mail.co.uk"))
	assert.False(t, IsValidEmail("name@example"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("name example@com.ua"))
	assert.False(t, IsValidEmail(""))
}

func TestIsSkipToken(t *testing.T) {
	assert.True(t, IsSkipToken("ДАЛІ"))
	assert.True(t, IsSkipToken("далі"))
	assert.True(t, IsSkipToken("ДАЛI")) // латинская I
	assert.True(t, IsSkipToken(" skip "))
	assert.True(t, IsSkipToken("Пропустити"))
	assert.False(t, IsSkipToken("next"))
	assert.False(t, IsSkipToken(""))
}
