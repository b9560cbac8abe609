package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

const (
	// INNCompanyLen длина ИНН организации
	INNCompanyLen = 10
	// INNPersonLen длина ИНН индивидуального предпринимателя или самозанятого
	INNPersonLen = 12
)

// NamePattern допустимые символы ФИО: латиница, кириллица, пробел и дефис
var NamePattern = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ \-]*$`)

// ValidateINN проверяет, что ИНН состоит из 10 или 12 цифр
func ValidateINN(inn string) error {
	if inn == "" {
		return fmt.Errorf("INN cannot be empty")
	}
	if Digits(inn) != inn {
		return fmt.Errorf("INN can only contain digits")
	}
	if len(inn) != INNCompanyLen && len(inn) != INNPersonLen {
		return fmt.Errorf("INN must be %d or %d digits long", INNCompanyLen, INNPersonLen)
	}
	return nil
}

// ValidateEmail проверяет адрес электронной почты
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword пароль не должен быть пустым, остальные правила проверяет сервер
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateName проверяет имя при регистрации и ФИО самозанятого
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !NamePattern.MatchString(name) {
		return fmt.Errorf("name can only contain letters, spaces and hyphens")
	}
	return nil
}
