package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

const (
	// MinPhoneDigits минимальное количество цифр в номере телефона
	MinPhoneDigits = 10
	// PhonePrefix первая цифра нормализованного номера
	PhonePrefix = "8"
)

// Digits оставляет в строке только цифры
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidatePhone проверяет, что в номере не меньше 10 цифр после удаления остальных символов
func ValidatePhone(phone string) error {
	if len(Digits(phone)) < MinPhoneDigits {
		return fmt.Errorf("phone number must contain at least %d digits", MinPhoneDigits)
	}
	return nil
}

// NormalizePhone приводит номер к 11 цифрам с ведущей 8: "+7 (999) 123-45-67" -> "89991234567"
func NormalizePhone(phone string) string {
	digits := Digits(phone)
	if len(digits) > MinPhoneDigits {
		digits = digits[len(digits)-MinPhoneDigits:]
	}
	return PhonePrefix + digits
}

// FormatPhone форматирует первые 10 цифр как "(999) 999-99-99" (без +7)
func FormatPhone(phone string) string {
	digits := Digits(phone)
	if len(digits) > MinPhoneDigits {
		digits = digits[:MinPhoneDigits]
	}

	var b strings.Builder
	if len(digits) > 0 {
		b.WriteString("(" + digits[:min(3, len(digits))])
	}
	if len(digits) >= 4 {
		b.WriteString(") " + digits[3:min(6, len(digits))])
	}
	if len(digits) >= 7 {
		b.WriteString("-" + digits[6:min(8, len(digits))])
	}
	if len(digits) >= 9 {
		b.WriteString("-" + digits[8:])
	}
	return b.String()
}
