package cli

import (
	"context"
	"time"

	"github.com/iudanet/kodrf/internal/client/session"
)

type statusView struct {
	ExpiresAt     time.Time
	Subject       string
	Authenticated bool
	Admin         bool
	Expired       bool
}

// runStatus показывает состояние авторизации. Подпись токена не проверяется, сервер делает это сам.
func (c *Cli) runStatus(_ context.Context) error {
	view := statusView{}

	token := c.cache.Token()
	if token != "" {
		view.Authenticated = true
		view.Admin = c.cache.IsAdmin()

		// непрозрачный токен (ErrNotJWT): срок действия неизвестен
		if info, err := session.Inspect(token); err == nil {
			view.ExpiresAt = info.ExpiresAt
			view.Subject = info.Subject
			view.Expired = info.Expired(c.now())
		}
	}

	c.render(statusTemplate, view)
	return nil
}
