package api

// HeaderError значение header в ответе авторизации при отказе
const HeaderError = "error"

// AuthRequest запрос /login и /registration
type AuthRequest struct {
	Name     string `json:"name"`     // имя (только при регистрации)
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// AuthResponse ответ /login и /registration.
// При успехе content содержит "<token>" или "<token>*<admin>", при header=="error" в content текст ошибки.
type AuthResponse struct {
	Header  string `json:"header"`
	Content string `json:"content"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
