package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_Fetch(t *testing.T) {
	want := []models.Supply{{ID: 1, Title: "Коледино"}, {ID: 2, Title: "Казань"}}
	apiMock := &httpClient.ClientAPIMock{
		GetScheduleFunc: func(ctx context.Context) ([]models.Supply, error) {
			return want, nil
		},
	}

	supplies, err := NewProvider(apiMock, discardLogger()).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, supplies)
	assert.Len(t, apiMock.GetScheduleCalls(), 1)
}

func TestProvider_FetchError(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		GetScheduleFunc: func(ctx context.Context) ([]models.Supply, error) {
			return nil, errors.New("timeout")
		},
	}

	supplies, err := NewProvider(apiMock, discardLogger()).Fetch(context.Background())

	require.Error(t, err)
	assert.NotNil(t, supplies)
	assert.Empty(t, supplies)
}

func TestPartition(t *testing.T) {
	supplies := []models.Supply{
		{ID: 1, DestinationIsSecondary: false},
		{ID: 2, DestinationIsSecondary: true},
		{ID: 3, DestinationIsSecondary: false},
		{ID: 4, DestinationIsSecondary: true},
	}

	tests := []struct {
		name    string
		channel models.Channel
		want    []int64
	}{
		{name: "primary", channel: models.ChannelPrimary, want: []int64{1, 3}},
		{name: "secondary", channel: models.ChannelSecondary, want: []int64{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(supplies, tt.channel)
			ids := make([]int64, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	assert.NotNil(t, Partition(nil, models.ChannelPrimary))
}

func TestFind(t *testing.T) {
	supplies := []models.Supply{{ID: 7, Title: "a"}, {ID: 9, Title: "b"}}

	s, ok := Find(supplies, 9)
	require.True(t, ok)
	assert.Equal(t, "b", s.Title)

	_, ok = Find(supplies, 1)
	assert.False(t, ok)
}

type fakeState struct {
	token     string
	person    *models.Person
	companies []models.Company
}

func (f fakeState) Token() string { return f.token }
func (f fakeState) Person() *models.Person { return f.person }
func (f fakeState) Companies() []models.Company { return f.companies }

func TestRoute(t *testing.T) {
	person := &models.Person{Name: "Иван"}
	company := []models.Company{{Name: "ООО", INN: "7707083893"}}

	tests := []struct {
		name  string
		state fakeState
		want  Destination
	}{
		{name: "no token", state: fakeState{person: person, companies: company}, want: RouteLogin},
		{name: "no person", state: fakeState{token: "t"}, want: RouteLogin},
		{name: "no companies", state: fakeState{token: "t", person: person, companies: []models.Company{}}, want: RouteAddCompany},
		{name: "ready", state: fakeState{token: "t", person: person, companies: company}, want: RouteOrderForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.state))
		})
	}
}
