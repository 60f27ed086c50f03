package response_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saylamc/config"
	"saylamc/shared/constant"
	"saylamc/shared/failure"
	"saylamc/transport/http/response"
)

func setServerEnv(t *testing.T, env string) {
	t.Helper()

	cfg := config.Get()
	previous := cfg.Server.Env
	cfg.Server.Env = env

	t.Cleanup(func() { cfg.Server.Env = previous })
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

// Outside development an internal error responds with a generic message; the
// wrapped chain, driver detail included, never reaches the client.
func TestWithError_InternalDetailSuppressedOutsideDevelopment(t *testing.T) {
	setServerEnv(t, constant.ServerEnvProduction)

	driverErr := &pq.Error{Message: `password authentication failed for user "app"`}
	err := fmt.Errorf("failed to get services: %w", driverErr)

	rec := httptest.NewRecorder()
	response.WithError(rec, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constant.ResponseErrorInternalServer, body["error"])
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.NotContains(t, rec.Body.String(), "password authentication")
}

func TestWithError_InternalDetailKeptInDevelopment(t *testing.T) {
	setServerEnv(t, constant.ServerEnvDevelopment)

	err := fmt.Errorf("failed to get services: %w", assert.AnError)

	rec := httptest.NewRecorder()
	response.WithError(rec, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, err.Error(), body["error"])
}

// Classified failures carry user-facing messages and pass through untouched
// in every environment.
func TestWithError_ClassifiedFailuresUntouched(t *testing.T) {
	setServerEnv(t, constant.ServerEnvProduction)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "not found", err: failure.NotFound("Service not found"), wantCode: http.StatusNotFound},
		{name: "unauthorized", err: failure.Unauthorized("Invalid email or password"), wantCode: http.StatusUnauthorized},
		{name: "bad request", err: failure.BadRequestFromString("Username or email already exists"), wantCode: http.StatusBadRequest},
		{name: "conflict", err: failure.Conflict("service slug already exists"), wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestWithJSONMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSONMessage(rec, http.StatusCreated, map[string]any{"id": 1}, "Booking created successfully")

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking created successfully", body["message"])
	require.NotNil(t, body["data"])
}
