package activate_day

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

const sessionID = "9b2e4a52-7c55-4c41-9a4e-0c3f3f0a6b11"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeService держит настоящий автомат выбора
type fakeService struct {
	selector *domain.RangeSelector
	err      error
}

func (f *fakeService) Activate(_ context.Context, id string, _ int64, date time.Time) (*models.SelectionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.selector.Activate(date)
	return &models.SelectionResponse{
		ID:    id,
		State: f.selector.State(),
		Start: f.selector.Start(),
		End:   f.selector.End(),
	}, nil
}

func do(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/selections/"+sessionID+"/days", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"selectionId": sessionID})
	req = req.WithContext(middleware.WithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_TwoClicksCompleteRange(t *testing.T) {
	h := NewHandler(&fakeService{selector: domain.NewRangeSelector(nil)}, nopLogger{})

	rec := do(h, `{"date":"2025-03-10"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, `{"date":"2025-03-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.SelectionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "completed", body.State)
	require.NotNil(t, body.Start)
	require.NotNil(t, body.End)
	assert.Equal(t, "2025-03-10", *body.Start)
	assert.Equal(t, "2025-03-15", *body.End)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"tomorrow"}`, nil, http.StatusBadRequest},
		{"not found", `{"date":"2025-03-10"}`, selection.ErrSessionNotFound, http.StatusNotFound},
		{"foreign session", `{"date":"2025-03-10"}`, selection.ErrAccessDenied, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{selector: domain.NewRangeSelector(nil), err: tt.err}, nopLogger{})
			assert.Equal(t, tt.status, do(h, tt.body).Code)
		})
	}
}
