package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "failure keeps its message", err: failure.NotFound("booking"), wantCode: http.StatusNotFound, wantBody: `{"error":"booking"}`},
		{name: "wrapped failure", err: fmt.Errorf("send: %w", failure.Conflict("stale")), wantCode: http.StatusConflict, wantBody: `{"error":"stale"}`},
		{name: "internal error is masked", err: errors.New("pq: relation \"bookings\" does not exist"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]int{"requestNumber": 42})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"requestNumber":42}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"`+constant.ResponseErrorRequestLimitExceeded+`"}`, rec.Body.String())
}
