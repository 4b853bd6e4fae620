package get_selection

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

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

type fakeService struct {
	err error
}

func (f *fakeService) Get(_ context.Context, id string, userID int64) (*models.SelectionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &models.SelectionResponse{ID: id, OwnerID: userID, ArtistID: 7, State: domain.SelectionStarted, Start: &start}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"ok", sessionID, nil, http.StatusOK},
		{"malformed id", "not-a-uuid", nil, http.StatusBadRequest},
		{"not found", sessionID, selection.ErrSessionNotFound, http.StatusNotFound},
		{"foreign session", sessionID, selection.ErrAccessDenied, http.StatusForbidden},
		{"internal", sessionID, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/selections/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"selectionId": tt.id})
			req = req.WithContext(middleware.WithUserID(req.Context(), 42))
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"state":"started"`)
				assert.Contains(t, rec.Body.String(), `"start":"2025-03-10"`)
				assert.NotContains(t, rec.Body.String(), `"end"`)
			}
		})
	}
}
