package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/models"
	"github.com/iudanet/kodrf/internal/validation"
	"github.com/iudanet/kodrf/pkg/api"
)

var (
	// ErrSubmissionInProgress предыдущая отправка ещё не завершилась
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrLoginRequired нет токена, нужен вход
	ErrLoginRequired = errors.New("login required")

	// ErrSubmissionFailed не удалось получить расчёт или отправить заявку; причина в логе
	ErrSubmissionFailed = errors.New("failed to submit order")
)

// Mode режим отправки заявки
type Mode int

const (
	ModeSave Mode = iota
	// ModeSaveAndPay после сохранения вызывающая сторона открывает оплату
	ModeSaveAndPay
)

// State стадия отправки заявки
type State int

const (
	StateEditing State = iota
	StateValidating
	StateQuoting
	StateSubmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateQuoting:
		return "quoting"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TokenSource источник текущего токена, обычно appdata.Cache
type TokenSource interface {
	Token() string
}

// Result итог успешной отправки
type Result struct {
	// SubmissionID идентификатор отправки для сопоставления с логами
	SubmissionID string
	Order        models.Order
	Quote        models.Quote
	Response     json.RawMessage
	Mode         Mode
}

// Workflow отправка заявки: проверка, расчёт стоимости, создание заявки
type Workflow struct {
	apiClient httpClient.ClientAPI
	tokens    TokenSource
	logger    *slog.Logger
	calendar  models.RecurringCalendar
	now       func() time.Time

	inFlight atomic.Bool
	mu       sync.Mutex
	state    State
}

// NewWorkflow creates a new order workflow
func NewWorkflow(apiClient httpClient.ClientAPI, tokens TokenSource, logger *slog.Logger) *Workflow {
	return &Workflow{
		apiClient: apiClient,
		tokens:    tokens,
		logger:    logger,
		calendar:  models.NewRecurringCalendar(),
		now:       time.Now,
		state:     StateEditing,
	}
}

// State текущая стадия
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

// Submit проверяет форму, запрашивает стоимость и отправляет заявку.
// Одновременно выполняется не больше одной отправки.
func (w *Workflow) Submit(ctx context.Context, supply models.Supply, form Form, mode Mode) (*Result, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer w.inFlight.Store(false)

	w.setState(StateEditing)

	token := w.tokens.Token()
	if token == "" {
		return nil, ErrLoginRequired
	}

	w.setState(StateValidating)
	if err := validate(supply, form, w.now(), w.calendar); err != nil {
		w.setState(StateEditing)
		return nil, err
	}

	draft := newDraft(supply, form, mode)
	logger := w.logger.With("submission_id", draft.id, "supply_id", supply.ID)

	w.setState(StateQuoting)
	quote, err := w.apiClient.Calculate(ctx, token, draft.calculatorRequest())
	if err != nil {
		logger.Error("Failed to get price quote", "error", err)
		w.setState(StateFailed)
		return nil, ErrSubmissionFailed
	}

	w.setState(StateSubmitting)
	req := api.NewOrderRequest{
		Order: draft.order(quote),
		Boxes: form.Boxes,
	}
	resp, err := w.apiClient.NewOrder(ctx, token, req)
	if err != nil {
		logger.Error("Failed to submit order", "error", err)
		w.setState(StateFailed)
		return nil, ErrSubmissionFailed
	}

	logger.Info("Order submitted", "price", quote.Price, "volume", draft.volume)
	w.setState(StateDone)

	return &Result{
		SubmissionID: draft.id,
		Order:        req.Order,
		Quote:        quote,
		Response:     resp,
		Mode:         mode,
	}, nil
}

// draft значения, вычисленные один раз для расчёта и для заявки
type draft struct {
	supply    models.Supply
	form      Form
	warehouse models.DestinationWarehouse
	city      string
	id        string
	volume    float64
	amount    int
	payment   bool
}

func newDraft(supply models.Supply, form Form, mode Mode) draft {
	city := form.DepartureCity
	if city == "" && len(supply.DepartureCities) > 0 {
		city = supply.DepartureCities[0].CityName
	}
	if form.SupplyType == "" {
		form.SupplyType = models.SupplyTypeBox
	}
	return draft{
		supply:    supply,
		form:      form,
		warehouse: supply.Warehouses[form.WarehouseIndex],
		city:      city,
		id:        uuid.NewString(),
		volume:    models.TotalVolume(form.Boxes),
		amount:    models.TotalAmount(form.Boxes),
		payment:   form.OnlinePayment || mode == ModeSaveAndPay,
	}
}

func (d draft) calculatorRequest() api.CalculatorRequest {
	return api.CalculatorRequest{
		SendCity:      d.warehouse.City,
		Store:         d.warehouse.Channel,
		DepartureCity: d.city,
		Volume:        d.volume,
		WillTaken:     d.form.Pickup,
		Pallet:        d.form.SupplyType.IsPallet(),
		Amount:        d.amount,
	}
}

// order собирает заявку; даты сдвигаются на день вперёд, как ожидает сервер
func (d draft) order(quote models.Quote) models.Order {
	departure := d.supply.DepartureDate
	if d.form.DepartureDate != nil {
		departure = *d.form.DepartureDate
	}

	return models.Order{
		DepartureDate:  departure.AddDays(1),
		AcceptanceDate: d.supply.AcceptanceDate.AddDays(1),
		Company:        d.form.CompanyINN,
		PhoneNumber:    validation.NormalizePhone(d.form.Phone),
		SendCity:       d.warehouse.City,
		DepartureCity:  d.city,
		Store:          d.warehouse.Channel,
		SupplyType:     d.form.SupplyType,
		Comment:        d.form.Comment,
		OzonNumber:     d.form.OrderNumber,
		Title:          d.supply.Title,
		Volume:         d.volume,
		Price:          quote.Price,
		WillTaken:      d.form.Pickup,
		Payment:        d.payment,
	}
}
