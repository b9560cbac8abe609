package registry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FNSClient клиент реестра физлиц (метод fl_status)
type FNSClient struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

var _ EntrepreneurRegistry = (*FNSClient)(nil)

// NewFNSClient создаёт клиент; baseURL например https://api-fns.ru/api
func NewFNSClient(baseURL, key string, timeout time.Duration, logger *slog.Logger) *FNSClient {
	return &FNSClient{
		httpClient: newHTTPClient(timeout, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
	}
}

// Ключи ответа сервиса на русском
type fnsStatusResponse struct {
	SelfEmployment *struct {
		Status bool `json:"Статус"`
	} `json:"Самозанятость"`
	FullName string `json:"ФИО"`
}

// SelfEmployedStatus запрашивает статус самозанятого по ИНН физлица
func (c *FNSClient) SelfEmployedStatus(ctx context.Context, inn string) (*SelfEmployed, error) {
	query := url.Values{}
	query.Set("inn", inn)
	query.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fl_status?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var resp fnsStatusResponse
	if err := do(c.httpClient, req, &resp); err != nil {
		return nil, err
	}

	return &SelfEmployed{
		Active:   resp.SelfEmployment != nil && resp.SelfEmployment.Status,
		FullName: resp.FullName,
	}, nil
}
