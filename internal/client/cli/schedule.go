package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/kodrf/internal/client/schedule"
	"github.com/iudanet/kodrf/internal/models"
)

type scheduleView struct {
	Channel  string
	Supplies []models.Supply
}

func (c *Cli) runSchedule(ctx context.Context, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	channel, ok := models.ParseChannel(name)
	if !ok {
		return fmt.Errorf("unknown channel %q. Use: primary, secondary", name)
	}

	supplies, err := c.schedule.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	c.render(scheduleTemplate, scheduleView{
		Channel:  channel.String(),
		Supplies: schedule.Partition(supplies, channel),
	})
	return nil
}
