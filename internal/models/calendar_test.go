package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurringCalendar_Check(t *testing.T) {
	cal := NewRecurringCalendar()
	today := NewDate(2025, time.March, 10) // понедельник

	tests := []struct {
		name    string
		kind    ScheduleKind
		date    Date
		wantErr error
	}{
		{name: "partial tuesday", kind: ScheduleRecurringPartial, date: NewDate(2025, time.March, 11)},
		{name: "partial thursday", kind: ScheduleRecurringPartial, date: NewDate(2025, time.March, 13), wantErr: ErrDateWrongWeekday},
		{name: "weekdays thursday", kind: ScheduleRecurringWeekdays, date: NewDate(2025, time.March, 13)},
		{name: "weekdays sunday", kind: ScheduleRecurringWeekdaysAlt, date: NewDate(2025, time.March, 16), wantErr: ErrDateWrongWeekday},
		{name: "today", kind: ScheduleRecurringWeekdays, date: today, wantErr: ErrDateTooEarly},
		{name: "beyond horizon", kind: ScheduleRecurringWeekdays, date: NewDate(2025, time.June, 11), wantErr: ErrDateTooLate},
		{name: "dated supply", kind: ScheduleDated, date: NewDate(2025, time.March, 11), wantErr: ErrScheduleNotRecurs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cal.Check(tt.kind, tt.date, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecurringCalendar_Blackout(t *testing.T) {
	cal := NewRecurringCalendar()
	today := NewDate(2024, time.December, 20)

	// 28.12.2024 суббота, но попадает в праздники
	err := cal.Check(ScheduleRecurringWeekdays, NewDate(2024, time.December, 28), today)
	assert.ErrorIs(t, err, ErrDateInBlackout)

	next := cal.Next(ScheduleRecurringWeekdays, NewDate(2024, time.December, 26), 2)
	assert.Equal(t, []Date{NewDate(2025, time.January, 7), NewDate(2025, time.January, 8)}, next)
}
