package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/kodrf/internal/models"
	"github.com/iudanet/kodrf/internal/validation"
)

// Form введённые пользователем данные заявки
type Form struct {
	// DepartureDate выбранная дата отправки, nil если не выбрана
	DepartureDate  *models.Date
	Phone          string
	SupplyType     models.SupplyType
	DepartureCity  string
	OrderNumber    string
	Comment        string
	CompanyINN     string
	Boxes          []models.Box
	WarehouseIndex int
	Pickup         bool
	OnlinePayment  bool
}

// Step шаг проверки формы
type Step string

const (
	StepWarehouse     Step = "warehouse"
	StepSupplyType    Step = "supply_type"
	StepPhone         Step = "phone"
	StepOrderNumber   Step = "order_number"
	StepPickupComment Step = "pickup_comment"
	StepDepartureDate Step = "departure_date"
	StepBoxes         Step = "boxes"
	StepDepartureCity Step = "departure_city"
	StepCalendar      Step = "calendar"
)

// ValidationError ошибка ввода, показывается пользователю как есть
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(step Step, message string) *ValidationError {
	return &ValidationError{Step: step, Message: message}
}

// Validate проверяет форму. Порядок проверок фиксирован, первая ошибка прерывает проверку:
// телефон, номер заказа Ozon, адрес забора, дата отправки, габариты коробок.
// До них проверяется выбор склада и типа поставки, после них город отправки и календарь.
func Validate(supply models.Supply, form Form, now time.Time) error {
	return validate(supply, form, now, models.NewRecurringCalendar())
}

func validate(supply models.Supply, form Form, now time.Time, calendar models.RecurringCalendar) error {
	if form.WarehouseIndex < 0 || form.WarehouseIndex >= len(supply.Warehouses) {
		return invalid(StepWarehouse, "Выберите склад назначения")
	}
	if form.SupplyType != "" && !slices.Contains(models.SupplyTypes, form.SupplyType) {
		return invalid(StepSupplyType, "Неизвестный тип поставки")
	}

	warehouse := supply.Warehouses[form.WarehouseIndex]
	kind := supply.Kind()

	if validation.ValidatePhone(form.Phone) != nil {
		return invalid(StepPhone, "Номер телефона введён некорректно")
	}
	if warehouse.RequiresOrderNumber() && strings.TrimSpace(form.OrderNumber) == "" {
		return invalid(StepOrderNumber, "Введите номер заказа Ozon")
	}
	if form.Pickup && strings.TrimSpace(form.Comment) == "" {
		return invalid(StepPickupComment, "Укажите адрес, откуда забрать груз")
	}
	if !kind.Recurring() && form.DepartureDate == nil {
		return invalid(StepDepartureDate, "Укажите дату отправки")
	}
	if len(form.Boxes) == 0 {
		return invalid(StepBoxes, "Добавьте хотя бы одну коробку")
	}
	for _, b := range form.Boxes {
		if !b.Valid() {
			return invalid(StepBoxes, "Размеры коробок заполнены некорректно")
		}
	}

	if form.DepartureCity != "" && len(supply.DepartureCities) > 0 && !supply.HasCity(form.DepartureCity) {
		return invalid(StepDepartureCity, "Из этого города отправка по слоту не выполняется")
	}
	if kind.Recurring() && form.DepartureDate != nil {
		if err := calendar.Check(kind, *form.DepartureDate, models.DateOf(now)); err != nil {
			return invalid(StepCalendar, calendarMessage(err))
		}
	}

	return nil
}

func calendarMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrDateTooEarly):
		return "Дата отправки должна быть не раньше завтрашнего дня"
	case errors.Is(err, models.ErrDateTooLate):
		return "Дата отправки должна быть в пределах трёх месяцев"
	case errors.Is(err, models.ErrDateWrongWeekday):
		return "В этот день недели отправок нет"
	case errors.Is(err, models.ErrDateInBlackout):
		return "В праздничные дни отправок нет"
	default:
		return "Дату отправки выбрать нельзя"
	}
}
