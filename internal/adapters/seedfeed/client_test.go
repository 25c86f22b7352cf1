package seedfeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/sales_dashboard/internal/adapters/seedfeed"
	"github.com/SscSPs/sales_dashboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `[
  {"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack","category":"men's clothing","image":"https://example.com/1.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
  {"id":2,"title":"Slim Fit T-Shirt","price":44.6,"description":"Casual","category":"men's clothing","image":"https://example.com/2.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
]`

func TestFetchTransactions_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "binary/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(feedBody))
	}))
	defer server.Close()

	client := seedfeed.NewClient(server.URL, 5*time.Second)
	defer client.Close()

	transactions, err := client.FetchTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Fjallraven Backpack", transactions[0].Title)
	assert.Equal(t, "329.85", transactions[0].Price.String())
	assert.False(t, transactions[0].Sold)
	assert.Equal(t, "2021-11-27T20:29:54+05:30", transactions[0].DateOfSale)
	assert.Equal(t, "44.6", transactions[1].PriceText())
	assert.True(t, transactions[1].Sold)
	assert.Empty(t, transactions[1].ID)
}

func TestFetchTransactions_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := seedfeed.NewClient(server.URL, 5*time.Second)
	defer client.Close()

	transactions, err := client.FetchTransactions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Nil(t, transactions)
}

func TestFetchTransactions_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := seedfeed.NewClient(server.URL, 5*time.Second)
	defer client.Close()

	_, err := client.FetchTransactions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
