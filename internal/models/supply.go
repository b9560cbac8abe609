package models

import (
	"strings"
	"time"
)

// Supply представляет слот поставки на склад назначения.
// Порядок слотов задаёт сервер, ключа сортировки в данных нет.
type Supply struct {
	DepartureDate          Date                   `json:"departureDate"`   // DepartureDate дата отправки либо маркер регулярного расписания
	AcceptanceDate         Date                   `json:"acceptanceDate"`  // AcceptanceDate крайняя дата приёмки
	Title                  string                 `json:"title"`           // Title название направления
	DepartureCities        []DepartureCity        `json:"departureCities"` // DepartureCities города, откуда можно отправить груз
	Warehouses             []DestinationWarehouse `json:"warehouses"`      // Warehouses склады назначения
	ID                     int64                  `json:"id"`
	DestinationIsSecondary bool                   `json:"ozon"` // DestinationIsSecondary true для OZON / ЯМ / ТК
}

// DepartureCity город отправки
type DepartureCity struct {
	CityName string `json:"cityName"`
}

// DestinationWarehouse склад назначения слота
type DestinationWarehouse struct {
	Name    string `json:"warehouseName"` // Name название склада
	Channel string `json:"store"`         // Channel маркетплейс или оператор ("WB", "Ozon", ...)
	City    string `json:"sendCity"`      // City город склада назначения
}

// ChannelOzon канал, для которого обязателен номер заказа
const ChannelOzon = "Ozon"

// RequiresOrderNumber сообщает, нужен ли номер заказа канала для склада
func (w DestinationWarehouse) RequiresOrderNumber() bool {
	return w.Channel == ChannelOzon
}

// Kind возвращает тип расписания слота.
// Только здесь сравниваются маркерные даты.
func (s Supply) Kind() ScheduleKind {
	return KindOf(s.DepartureDate)
}

// HasCity проверяет, что город входит в список городов отправки слота
func (s Supply) HasCity(name string) bool {
	for _, c := range s.DepartureCities {
		if c.CityName == name {
			return true
		}
	}
	return false
}

// Channel направление назначения: основной маркетплейс или остальные каналы
type Channel int

const (
	ChannelPrimary   Channel = iota // WB
	ChannelSecondary                // OZON / ЯМ / ТК
)

func (c Channel) String() string {
	if c == ChannelSecondary {
		return "OZON / ЯМ / ТК"
	}
	return "WB"
}

// ParseChannel разбирает имя канала из командной строки
func ParseChannel(s string) (Channel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary", "wb":
		return ChannelPrimary, true
	case "secondary", "ozon", "other":
		return ChannelSecondary, true
	default:
		return ChannelPrimary, false
	}
}

// Matches проверяет принадлежность слота каналу
func (c Channel) Matches(s Supply) bool {
	return s.DestinationIsSecondary == (c == ChannelSecondary)
}

// ScheduleKind тип расписания слота
type ScheduleKind int

const (
	// ScheduleDated слот с конкретной датой отправки
	ScheduleDated ScheduleKind = iota
	// ScheduleRecurringPartial регулярный слот: Вт, Ср, Пт, Сб (маркер 1970-01-01)
	ScheduleRecurringPartial
	// ScheduleRecurringWeekdays регулярный слот: Пн–Сб (маркер 1980-01-01)
	ScheduleRecurringWeekdays
	// ScheduleRecurringWeekdaysAlt регулярный слот: Пн–Сб (маркер 1990-01-01)
	ScheduleRecurringWeekdaysAlt
)

var (
	sentinelPartial     = NewDate(1970, time.January, 1)
	sentinelWeekdays    = NewDate(1980, time.January, 1)
	sentinelWeekdaysAlt = NewDate(1990, time.January, 1)
)

// KindOf определяет тип расписания по дате отправки
func KindOf(departure Date) ScheduleKind {
	switch departure {
	case sentinelPartial:
		return ScheduleRecurringPartial
	case sentinelWeekdays:
		return ScheduleRecurringWeekdays
	case sentinelWeekdaysAlt:
		return ScheduleRecurringWeekdaysAlt
	default:
		return ScheduleDated
	}
}

// Recurring сообщает, что дата отправки слота не является реальной датой
func (k ScheduleKind) Recurring() bool {
	return k != ScheduleDated
}

// Weekdays возвращает дни недели отправки регулярного слота
func (k ScheduleKind) Weekdays() []time.Weekday {
	switch k {
	case ScheduleRecurringPartial:
		return []time.Weekday{time.Tuesday, time.Wednesday, time.Friday, time.Saturday}
	case ScheduleRecurringWeekdays, ScheduleRecurringWeekdaysAlt:
		return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	default:
		return nil
	}
}

var weekdayShort = map[time.Weekday]string{
	time.Sunday:    "Вс",
	time.Monday:    "Пн",
	time.Tuesday:   "Вт",
	time.Wednesday: "Ср",
	time.Thursday:  "Чт",
	time.Friday:    "Пт",
	time.Saturday:  "Сб",
}

// WeekdayShort короткое русское название дня недели
func WeekdayShort(d time.Weekday) string {
	return weekdayShort[d]
}

// Describe возвращает строку для списка слотов: дни недели для регулярных,
// дату отправки и приёмки для датированных
func (s Supply) Describe() string {
	kind := s.Kind()
	if kind.Recurring() {
		days := kind.Weekdays()
		names := make([]string, 0, len(days))
		for _, d := range days {
			names = append(names, WeekdayShort(d))
		}
		return strings.Join(names, ", ")
	}
	return s.DepartureDate.Format("02.01.06") + " (" + WeekdayShort(s.DepartureDate.Weekday()) + "), приём до " +
		s.AcceptanceDate.Format("02.01")
}
