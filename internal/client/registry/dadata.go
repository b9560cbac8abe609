package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
)

// DadataClient клиент реестра юрлиц (метод findById/party)
type DadataClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ BusinessRegistry = (*DadataClient)(nil)

// NewDadataClient создаёт клиент; baseURL без завершающего слеша, например
// https://suggestions.dadata.ru/suggestions/api/4_1/rs
func NewDadataClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *DadataClient {
	return &DadataClient{
		httpClient: newHTTPClient(timeout, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type dadataRequest struct {
	Query string `json:"query"`
}

type dadataResponse struct {
	Suggestions []struct {
		Value             string `json:"value"`
		UnrestrictedValue string `json:"unrestricted_value"`
		Data              struct {
			INN  string `json:"inn"`
			KPP  string `json:"kpp"`
			OGRN string `json:"ogrn"`
			Name struct {
				FullWithOPF string `json:"full_with_opf"`
			} `json:"name"`
		} `json:"data"`
	} `json:"suggestions"`
}

// FindParty возвращает первое совпадение или nil, если ничего не найдено
func (c *DadataClient) FindParty(ctx context.Context, inn string) (*Party, error) {
	body, err := json.Marshal(dadataRequest{Query: inn})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/findById/party", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	var resp dadataResponse
	if err := do(c.httpClient, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Suggestions) == 0 {
		return nil, nil
	}

	s := resp.Suggestions[0]
	name := s.Value
	if name == "" {
		name = s.UnrestrictedValue
	}
	if name == "" {
		name = s.Data.Name.FullWithOPF
	}

	if s.Data.INN != "" {
		inn = s.Data.INN
	}
	return &Party{
		Name: name,
		INN:  inn,
		KPP:  s.Data.KPP,
		OGRN: s.Data.OGRN,
	}, nil
}

func newHTTPClient(timeout time.Duration, logger *slog.Logger) *http.Client {
	if timeout <= 0 {
		timeout = httpClient.DefaultTimeout
	}
	var transport http.RoundTripper = http.DefaultTransport
	if logger != nil {
		transport = httpClient.NewLoggingTransport(transport, logger)
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// do выполняет запрос и декодирует JSON ответ
func do(client *http.Client, req *http.Request, result any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
