package schedule

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/models"
)

// Provider загружает расписание слотов поставки
type Provider struct {
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
}

// NewProvider creates a new schedule provider
func NewProvider(apiClient httpClient.ClientAPI, logger *slog.Logger) *Provider {
	return &Provider{
		apiClient: apiClient,
		logger:    logger,
	}
}

// Fetch загружает расписание без авторизации.
// При ошибке возвращает пустой список вместе с ошибкой.
func (p *Provider) Fetch(ctx context.Context) ([]models.Supply, error) {
	supplies, err := p.apiClient.GetSchedule(ctx)
	if err != nil {
		p.logger.Error("Failed to fetch schedule", "error", err)
		return []models.Supply{}, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	p.logger.Debug("Schedule fetched", "count", len(supplies))
	return supplies, nil
}

// Partition оставляет слоты одного канала, порядок сервера сохраняется
func Partition(supplies []models.Supply, channel models.Channel) []models.Supply {
	result := make([]models.Supply, 0, len(supplies))
	for _, s := range supplies {
		if channel.Matches(s) {
			result = append(result, s)
		}
	}
	return result
}

// Find ищет слот по идентификатору
func Find(supplies []models.Supply, id int64) (models.Supply, bool) {
	for _, s := range supplies {
		if s.ID == id {
			return s, true
		}
	}
	return models.Supply{}, false
}
