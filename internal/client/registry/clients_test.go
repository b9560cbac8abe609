package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDadataClient_FindParty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/findById/party", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req["query"] {
		case "7707083893":
			_, _ = w.Write([]byte(`{"suggestions":[
				{"value":"ПАО СБЕРБАНК","unrestricted_value":"ПАО СБЕРБАНК РОССИИ",
				 "data":{"inn":"7707083893","kpp":"773601001","ogrn":"1027700132195","name":{"full_with_opf":"ПУБЛИЧНОЕ АКЦИОНЕРНОЕ ОБЩЕСТВО"}}},
				{"value":"второй","data":{"inn":"7707083893"}}
			]}`))
		case "1111111111":
			_, _ = w.Write([]byte(`{"suggestions":[{"value":"","unrestricted_value":"ООО Запасное","data":{}}]}`))
		default:
			_, _ = w.Write([]byte(`{"suggestions":[]}`))
		}
	}))
	defer server.Close()

	client := NewDadataClient(server.URL+"/", "secret", 0, nil)

	party, err := client.FindParty(context.Background(), "7707083893")
	require.NoError(t, err)
	require.NotNil(t, party)
	assert.Equal(t, "ПАО СБЕРБАНК", party.Name)
	assert.Equal(t, "773601001", party.KPP)
	assert.Equal(t, "1027700132195", party.OGRN)

	party, err = client.FindParty(context.Background(), "1111111111")
	require.NoError(t, err)
	assert.Equal(t, "ООО Запасное", party.Name)
	assert.Equal(t, "1111111111", party.INN)

	party, err = client.FindParty(context.Background(), "2222222222")
	require.NoError(t, err)
	assert.Nil(t, party)
}

func TestDadataClient_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewDadataClient(server.URL, "bad", 0, nil).FindParty(context.Background(), "7707083893")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestFNSClient_SelfEmployedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/fl_status", r.URL.Path)
		assert.Equal(t, "key-1", r.URL.Query().Get("key"))

		switch r.URL.Query().Get("inn") {
		case "772800000001":
			_, _ = w.Write([]byte(`{"Самозанятость":{"Статус":true},"ФИО":"Петров Пётр Петрович"}`))
		default:
			_, _ = w.Write([]byte(`{"Самозанятость":{"Статус":false}}`))
		}
	}))
	defer server.Close()

	client := NewFNSClient(server.URL, "key-1", 0, nil)

	status, err := client.SelfEmployedStatus(context.Background(), "772800000001")
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, "Петров Пётр Петрович", status.FullName)

	status, err = client.SelfEmployedStatus(context.Background(), "772800000002")
	require.NoError(t, err)
	assert.False(t, status.Active)
}

func TestFNSClient_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewFNSClient(server.URL, "k", 0, nil).SelfEmployedStatus(context.Background(), "772800000001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
