package cli

import (
	"context"
	"errors"

	"github.com/iudanet/kodrf/internal/models"
)

var errProfileUnavailable = errors.New("profile is not available, check your connection and try again")

type profileView struct {
	Person    *models.Person
	Companies []models.Company
	Fresh     bool
}

func (c *Cli) runProfile(_ context.Context) error {
	if c.cache.Token() == "" {
		return ErrNotAuthenticated
	}
	// Ждём фоновую сверку кэша, запущенную при старте
	c.cache.Wait()

	person := c.cache.Person()
	if person == nil {
		return errProfileUnavailable
	}

	c.render(profileTemplate, profileView{
		Person:    person,
		Companies: c.cache.Companies(),
		Fresh:     c.cache.Fresh(),
	})
	return nil
}
