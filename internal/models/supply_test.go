package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name      string
		departure Date
		want      ScheduleKind
		recurring bool
	}{
		{name: "1970 sentinel", departure: NewDate(1970, time.January, 1), want: ScheduleRecurringPartial, recurring: true},
		{name: "1980 sentinel", departure: NewDate(1980, time.January, 1), want: ScheduleRecurringWeekdays, recurring: true},
		{name: "1990 sentinel", departure: NewDate(1990, time.January, 1), want: ScheduleRecurringWeekdaysAlt, recurring: true},
		{name: "real date", departure: NewDate(2025, time.March, 14), want: ScheduleDated},
		{name: "day after sentinel", departure: NewDate(1970, time.January, 2), want: ScheduleDated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := KindOf(tt.departure)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.recurring, kind.Recurring())
		})
	}
}

func TestSupply_UnmarshalJSON(t *testing.T) {
	raw := `{
		"id": 7,
		"title": "Коледино",
		"departureDate": "1970-01-01",
		"acceptanceDate": "2025-03-10T00:00:00Z",
		"ozon": true,
		"departureCities": [{"cityName": "Москва"}, {"cityName": "Тула"}],
		"warehouses": [{"warehouseName": "Хоругвино", "store": "Ozon", "sendCity": "Солнечногорск"}]
	}`

	var s Supply
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, int64(7), s.ID)
	assert.True(t, s.DestinationIsSecondary)
	assert.Equal(t, ScheduleRecurringPartial, s.Kind())
	assert.Equal(t, NewDate(2025, time.March, 10), s.AcceptanceDate)
	assert.True(t, s.HasCity("Тула"))
	assert.False(t, s.HasCity("Казань"))
	require.Len(t, s.Warehouses, 1)
	assert.True(t, s.Warehouses[0].RequiresOrderNumber())
	assert.Equal(t, "Солнечногорск", s.Warehouses[0].City)
}

func TestSupply_Describe(t *testing.T) {
	recurring := Supply{DepartureDate: NewDate(1970, time.January, 1)}
	assert.Equal(t, "Вт, Ср, Пт, Сб", recurring.Describe())

	weekdays := Supply{DepartureDate: NewDate(1990, time.January, 1)}
	assert.Equal(t, "Пн, Вт, Ср, Чт, Пт, Сб", weekdays.Describe())

	dated := Supply{
		DepartureDate:  NewDate(2025, time.March, 14), // пятница
		AcceptanceDate: NewDate(2025, time.March, 12),
	}
	assert.Equal(t, "14.03.25 (Пт), приём до 12.03", dated.Describe())
}

func TestChannel(t *testing.T) {
	primary := Supply{ID: 1}
	secondary := Supply{ID: 2, DestinationIsSecondary: true}

	assert.True(t, ChannelPrimary.Matches(primary))
	assert.False(t, ChannelPrimary.Matches(secondary))
	assert.True(t, ChannelSecondary.Matches(secondary))

	ch, ok := ParseChannel("ozon")
	assert.True(t, ok)
	assert.Equal(t, ChannelSecondary, ch)

	ch, ok = ParseChannel("")
	assert.True(t, ok)
	assert.Equal(t, ChannelPrimary, ch)

	_, ok = ParseChannel("post")
	assert.False(t, ok)
}
