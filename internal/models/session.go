package models

import "strings"

// AdminSeparator разделяет токен и признак администратора в ответе авторизации
const AdminSeparator = "*"

// Session данные авторизации: bearer токен и необязательный признак администратора
type Session struct {
	Token string `json:"token"`
	Admin string `json:"admin,omitempty"`
}

// ParseSessionContent разбирает content ответа /login и /registration:
// "<token>" либо "<token>*<admin>"
func ParseSessionContent(content string) Session {
	token, admin, _ := strings.Cut(content, AdminSeparator)
	return Session{Token: token, Admin: admin}
}

// Authenticated сообщает, что токен присутствует
func (s Session) Authenticated() bool {
	return s.Token != ""
}
