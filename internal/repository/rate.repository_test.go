package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketboard/internal/util"
	"marketboard/pkg/fred"

	"github.com/stretchr/testify/require"
)

func TestFredRateRepository(t *testing.T) {
	start := util.NewDate(2023, 1, 1)
	end := util.NewDate(2023, 6, 1)

	t.Run("missing api key reports not configured", func(t *testing.T) {
		handler := NewFredRateRepository(fred.NewClient(""), time.Minute)

		_, err := handler.List("FEDFUNDS", start, end)
		require.ErrorIs(t, err, ErrNotConfigured)

		handler = NewFredRateRepository(nil, time.Minute)
		_, err = handler.List("FEDFUNDS", start, end)
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("happy path caches within ttl", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Write([]byte(`{"observations": [
				{"date": "2023-04-01", "value": "4.83"},
				{"date": "2023-05-01", "value": "."},
				{"date": "2023-06-01", "value": "5.08"}
			]}`))
		}))
		defer server.Close()

		client := fred.NewClient("test-key")
		client.BaseURL = server.URL
		handler := NewFredRateRepository(client, time.Minute)

		series, err := handler.List("FEDFUNDS", start, end)
		require.NoError(t, err)
		require.Equal(t, 2, series.Len())
		require.Equal(t, 5.08, series.Last().Value)

		_, err = handler.List("FEDFUNDS", start, end)
		require.NoError(t, err)
		require.Equal(t, 1, requests)
	})

	t.Run("empty series reports data unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"observations": []}`))
		}))
		defer server.Close()

		client := fred.NewClient("test-key")
		client.BaseURL = server.URL
		handler := NewFredRateRepository(client, time.Minute)

		_, err := handler.List("ECBDFR", start, end)
		require.ErrorIs(t, err, ErrDataUnavailable)
	})

	t.Run("provider failure reports data unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		}))
		defer server.Close()

		client := fred.NewClient("test-key")
		client.BaseURL = server.URL
		handler := NewFredRateRepository(client, time.Minute)

		_, err := handler.List("IUDSOIA", start, end)
		require.ErrorIs(t, err, ErrDataUnavailable)
	})
}
