package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/validation"
	"github.com/iudanet/kodrf/pkg/api"
)

var (
	// ErrLoginRequired нет токена, нужен вход
	ErrLoginRequired = errors.New("login required")

	// ErrINNRequired ИНН не введён
	ErrINNRequired = errors.New("INN is required")

	// ErrCompanyNotAdded сервер не принял компанию; причина в логе
	ErrCompanyNotAdded = errors.New("failed to add company")

	// ErrCompanyNotRemoved сервер не удалил компанию; причина в логе
	ErrCompanyNotRemoved = errors.New("failed to remove company")
)

// BusinessRegistry реестр юрлиц и ИП. Если ничего не найдено, возвращает nil, nil
type BusinessRegistry interface {
	FindParty(ctx context.Context, inn string) (*Party, error)
}

// EntrepreneurRegistry реестр статусов физлиц (самозанятость)
type EntrepreneurRegistry interface {
	SelfEmployedStatus(ctx context.Context, inn string) (*SelfEmployed, error)
}

// Party запись реестра юрлиц
type Party struct {
	Name string
	INN  string
	KPP  string
	OGRN string
}

// SelfEmployed ответ реестра самозанятых
type SelfEmployed struct {
	FullName string
	Active   bool
}

// Cache часть appdata.Cache, нужная реестру
type Cache interface {
	Token() string
	RefreshPersonAndCompanies(ctx context.Context, override string)
}

// LookupStatus результат поиска по ИНН
type LookupStatus int

const (
	// LookupSkipped ИНН не 10 и не 12 цифр, запрос не выполнялся
	LookupSkipped LookupStatus = iota
	LookupFound
	LookupSelfEmployed
	LookupNotFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupSelfEmployed:
		return "self-employed"
	case LookupNotFound:
		return "not found"
	default:
		return "skipped"
	}
}

// LookupResult найденная компания
type LookupResult struct {
	INN    string
	Name   string
	KPP    string
	OGRN   string
	Status LookupStatus
}

// Registry поиск компаний во внешних реестрах и управление списком компаний пользователя
type Registry struct {
	apiClient    httpClient.ClientAPI
	cache        Cache
	business     BusinessRegistry
	entrepreneur EntrepreneurRegistry
	logger       *slog.Logger
}

// NewRegistry creates a new company registry.
// business и entrepreneur могут быть nil, если ключи реестров не настроены.
func NewRegistry(apiClient httpClient.ClientAPI, cache Cache, business BusinessRegistry, entrepreneur EntrepreneurRegistry, logger *slog.Logger) *Registry {
	return &Registry{
		apiClient:    apiClient,
		cache:        cache,
		business:     business,
		entrepreneur: entrepreneur,
		logger:       logger,
	}
}

// LookupByTin ищет компанию по ИНН. Из ввода берутся только цифры.
// 10 цифр: реестр юрлиц. 12 цифр: реестр юрлиц, затем реестр самозанятых.
// Ненастроенный реестр пропускается.
// При нескольких совпадениях берётся первое.
func (r *Registry) LookupByTin(ctx context.Context, raw string) (LookupResult, error) {
	inn := validation.Digits(raw)
	result := LookupResult{INN: inn, Status: LookupSkipped}

	if len(inn) != validation.INNCompanyLen && len(inn) != validation.INNPersonLen {
		return result, nil
	}
	if r.business != nil {
		party, err := r.business.FindParty(ctx, inn)
		if err != nil {
			r.logger.Warn("Business registry lookup failed", "error", err)
			return result, fmt.Errorf("business registry lookup failed: %w", err)
		}
		if party != nil {
			result.Status = LookupFound
			result.Name = party.Name
			result.KPP = party.KPP
			result.OGRN = party.OGRN
			return result, nil
		}
		result.Status = LookupNotFound
	}

	if len(inn) != validation.INNPersonLen || r.entrepreneur == nil {
		if r.business == nil {
			r.logger.Debug("Registries are not configured, lookup skipped")
		}
		return result, nil
	}
	// 12 цифр проверяются в реестре самозанятых и без реестра юрлиц
	result.Status = LookupNotFound

	status, err := r.entrepreneur.SelfEmployedStatus(ctx, inn)
	if err != nil {
		r.logger.Warn("Entrepreneur registry lookup failed", "error", err)
		return result, fmt.Errorf("entrepreneur registry lookup failed: %w", err)
	}
	if status != nil && status.Active {
		result.Status = LookupSelfEmployed
		result.Name = status.FullName
	}
	return result, nil
}

// AddCompany добавляет компанию пользователю и обновляет кэш.
// При ошибке список компаний в кэше не меняется.
func (r *Registry) AddCompany(ctx context.Context, name, tin string) error {
	inn := validation.Digits(tin)
	if inn == "" {
		return ErrINNRequired
	}
	token := r.cache.Token()
	if token == "" {
		return ErrLoginRequired
	}

	req := api.AddCompanyRequest{CompanyName: name, INN: inn}
	if err := r.apiClient.AddCompany(ctx, token, req); err != nil {
		r.logger.Error("Failed to add company", "error", err)
		return ErrCompanyNotAdded
	}

	r.logger.Info("Company added")
	r.cache.RefreshPersonAndCompanies(ctx, token)
	return nil
}

// RemoveCompany удаляет компанию по ИНН и обновляет кэш
func (r *Registry) RemoveCompany(ctx context.Context, tin string) error {
	inn := validation.Digits(tin)
	if inn == "" {
		return ErrINNRequired
	}
	token := r.cache.Token()
	if token == "" {
		return ErrLoginRequired
	}

	if err := r.apiClient.DeleteCompany(ctx, token, inn); err != nil {
		r.logger.Error("Failed to remove company", "error", err)
		return ErrCompanyNotRemoved
	}

	r.logger.Info("Company removed")
	r.cache.RefreshPersonAndCompanies(ctx, token)
	return nil
}
