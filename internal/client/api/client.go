package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/kodrf/internal/models"
	"github.com/iudanet/kodrf/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает удалённый сервис kodrf
type ClientAPI interface {
	Login(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error)
	GetPerson(ctx context.Context, token string) (*models.Person, error)
	GetCompanies(ctx context.Context, token string) ([]models.Company, error)
	AddCompany(ctx context.Context, token string, req api.AddCompanyRequest) error
	DeleteCompany(ctx context.Context, token, inn string) error
	GetSchedule(ctx context.Context) ([]models.Supply, error)
	Calculate(ctx context.Context, token string, req api.CalculatorRequest) (models.Quote, error)
	NewOrder(ctx context.Context, token string, req api.NewOrderRequest) (json.RawMessage, error)
}

// DefaultTimeout таймаут запроса по умолчанию
const DefaultTimeout = 30 * time.Second

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент.
// timeout <= 0 означает DefaultTimeout, logger == nil отключает логирование запросов.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	var transport http.RoundTripper = http.DefaultTransport
	if logger != nil {
		transport = NewLoggingTransport(transport, logger)
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/registration", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetPerson получает профиль пользователя. На null сервера возвращается nil профиль.
func (c *Client) GetPerson(ctx context.Context, token string) (*models.Person, error) {
	var person *models.Person
	if err := c.doRequest(ctx, http.MethodGet, "/personal_account", token, nil, &person); err != nil {
		return nil, fmt.Errorf("get person request failed: %w", err)
	}
	return person, nil
}

// GetCompanies получает список компаний пользователя в порядке сервера
func (c *Client) GetCompanies(ctx context.Context, token string) ([]models.Company, error) {
	var companies []models.Company
	if err := c.doRequest(ctx, http.MethodGet, "/api/companies", token, nil, &companies); err != nil {
		return nil, fmt.Errorf("get companies request failed: %w", err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// AddCompany добавляет компанию в список пользователя
func (c *Client) AddCompany(ctx context.Context, token string, req api.AddCompanyRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/companies/add", token, req, nil); err != nil {
		return fmt.Errorf("add company request failed: %w", err)
	}
	return nil
}

// DeleteCompany удаляет компанию по ИНН
func (c *Client) DeleteCompany(ctx context.Context, token, inn string) error {
	path := "/api/companies/delete/" + url.PathEscape(inn)
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete company request failed: %w", err)
	}
	return nil
}

// GetSchedule получает расписание слотов (без авторизации)
func (c *Client) GetSchedule(ctx context.Context) ([]models.Supply, error) {
	var supplies []models.Supply
	if err := c.doRequest(ctx, http.MethodGet, "/api/schedule", "", nil, &supplies); err != nil {
		return nil, fmt.Errorf("get schedule request failed: %w", err)
	}
	if supplies == nil {
		supplies = []models.Supply{}
	}
	return supplies, nil
}

// Calculate запрашивает стоимость доставки и сразу разбирает ответ в models.Quote
func (c *Client) Calculate(ctx context.Context, token string, req api.CalculatorRequest) (models.Quote, error) {
	var resp api.CalculatorResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/calculator", token, req, &resp); err != nil {
		return models.Quote{}, fmt.Errorf("calculator request failed: %w", err)
	}
	quote, err := models.ParseQuote(resp.Content)
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to parse calculator response: %w", err)
	}
	return quote, nil
}

// NewOrder отправляет заявку. Тело ответа сервер не документирует, поэтому возвращается как есть.
func (c *Client) NewOrder(ctx context.Context, token string, req api.NewOrderRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, "/new_order", token, req, &resp); err != nil {
		return nil, fmt.Errorf("new order request failed: %w", err)
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос.
// Пустой token означает запрос без авторизации.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
