package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotEngine/pkg/logger"
	"github.com/m04kA/SMC-SlotEngine/pkg/logger/loggertest"
)

func TestClient_GetService(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"id":42,"name":"Women's haircut","duration_minutes":60,"category":"haircut","price":"1500.50"}`,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"code":404,"message":"not found"}`,
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantErr: ErrInvalidResponse,
		},
		{
			name:    "broken json",
			status:  http.StatusOK,
			body:    `{"id":`,
			wantErr: ErrInvalidResponse,
		},
		{
			name:    "zero duration",
			status:  http.StatusOK,
			body:    `{"id":42,"name":"x","duration_minutes":0,"category":"haircut","price":0}`,
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/internal/services/42", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, loggertest.New(t))
			service, err := client.GetService(context.Background(), 42)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), service.ID)
			assert.Equal(t, 60, service.DurationMinutes)
			assert.Equal(t, "haircut", service.Category)
			assert.True(t, decimal.RequireFromString("1500.50").Equal(service.Price))
		})
	}
}

func TestClient_GetService_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 100*time.Millisecond, logger.NewNop()).GetService(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
