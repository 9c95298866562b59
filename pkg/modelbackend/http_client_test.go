package modelbackend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"career-ai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsWireFormat(t *testing.T) {
	userId := uuid.New()
	var got map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"reply":"Focus on system design."}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", time.Second)
	req := NewRequest(userId, "what next?", entity.ChatContext{
		DashboardSnapshot: entity.EmptyDashboardStats(userId),
		LearningHours:     9,
	})

	resp, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Reply)
	assert.Equal(t, "Focus on system design.", *resp.Reply)

	assert.Equal(t, userId.String(), got["user_id"])
	assert.Equal(t, "what next?", got["message"])
	ctx := got["context"].(map[string]interface{})
	assert.Equal(t, float64(9), ctx["learning_hours"])
	dashboard := ctx["dashboard"].(map[string]interface{})
	assert.Equal(t, userId.String(), dashboard["user_id"])
	assert.Equal(t, float64(0), dashboard["total_job_matches"])
	assert.Nil(t, dashboard["last_updated"])
}

func TestCompleteNullDashboardStaysNull(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Context map[string]json.RawMessage `json:"context"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		raw = body.Context
		_, _ = w.Write([]byte(`{"reply":"ok"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Complete(context.Background(),
		NewRequest(uuid.New(), "hi", entity.ChatContext{}))
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw["dashboard"]))
}

func TestCompleteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, resp *Response, err error)
	}{
		{
			name: "upstream status keeps raw body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("overloaded"))
			},
			check: func(t *testing.T, _ *Response, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
				assert.Equal(t, "overloaded", se.Body)
			},
		},
		{
			name: "missing reply field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"detail":"nothing to say"}`))
			},
			check: func(t *testing.T, resp *Response, err error) {
				require.NoError(t, err)
				assert.Nil(t, resp.Reply)
			},
		},
		{
			name: "unparsable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>gateway</html>`))
			},
			check: func(t *testing.T, _ *Response, err error) {
				var te *TransportError
				assert.ErrorAs(t, err, &te)
			},
		},
		{
			name: "slow backend times out",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(500 * time.Millisecond):
				case <-r.Context().Done():
				}
			},
			check: func(t *testing.T, _ *Response, err error) {
				var te *TransportError
				assert.ErrorAs(t, err, &te)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			resp, err := NewHTTPClient(srv.URL, 100*time.Millisecond).
				Complete(context.Background(), NewRequest(uuid.New(), "hi", entity.ChatContext{}))
			tt.check(t, resp, err)
		})
	}
}

func TestCompleteNotConfigured(t *testing.T) {
	_, err := NewHTTPClient("  ", time.Second).Complete(context.Background(), Request{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
