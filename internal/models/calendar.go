package models

import (
	"errors"
	"slices"
	"time"
)

// DateRange закрытый интервал дат
type DateRange struct {
	From Date
	To   Date
}

// Contains проверяет попадание даты в интервал включительно
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// DefaultBlackouts новогодние праздники, когда регулярные отправки не выполняются
var DefaultBlackouts = []DateRange{
	{From: NewDate(2024, time.December, 27), To: NewDate(2025, time.January, 6)},
}

var (
	ErrDateTooEarly      = errors.New("date must be at least tomorrow")
	ErrDateTooLate       = errors.New("date must be within three months")
	ErrDateWrongWeekday  = errors.New("no departures on this weekday")
	ErrDateInBlackout    = errors.New("no departures during holidays")
	ErrScheduleNotRecurs = errors.New("supply has a fixed departure date")
)

// RecurringCalendar правила выбора даты отправки для регулярного слота
type RecurringCalendar struct {
	Blackouts []DateRange
	// Horizon сколько месяцев вперёд можно выбирать дату
	Horizon int
}

// NewRecurringCalendar создаёт календарь с праздниками по умолчанию
func NewRecurringCalendar() RecurringCalendar {
	return RecurringCalendar{
		Blackouts: DefaultBlackouts,
		Horizon:   3,
	}
}

// Check проверяет выбранную дату: не раньше завтрашнего дня, не позже горизонта,
// разрешённый день недели и вне праздников.
func (c RecurringCalendar) Check(kind ScheduleKind, date, today Date) error {
	if !kind.Recurring() {
		return ErrScheduleNotRecurs
	}
	if date.Before(today.AddDays(1)) {
		return ErrDateTooEarly
	}
	if date.After(today.AddMonths(c.Horizon)) {
		return ErrDateTooLate
	}
	if !slices.Contains(kind.Weekdays(), date.Weekday()) {
		return ErrDateWrongWeekday
	}
	for _, r := range c.Blackouts {
		if r.Contains(date) {
			return ErrDateInBlackout
		}
	}
	return nil
}

// Next возвращает ближайшие n дат, доступных для отправки, начиная с завтрашнего дня
func (c RecurringCalendar) Next(kind ScheduleKind, today Date, n int) []Date {
	if !kind.Recurring() || n <= 0 {
		return nil
	}
	result := make([]Date, 0, n)
	limit := today.AddMonths(c.Horizon)
	for d := today.AddDays(1); !d.After(limit) && len(result) < n; d = d.AddDays(1) {
		if c.Check(kind, d, today) == nil {
			result = append(result, d)
		}
	}
	return result
}
