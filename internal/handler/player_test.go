package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

func TestHandleGetState(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing User ID",
			url:            "/api/v1/player/state",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing user_id",
		},
		{
			name: "Not Found",
			url:  "/api/v1/player/state?user_id=" + testUserID,
			setupMocks: func(m *MockPlayerService) {
				m.On("GetState", mock.Anything, testUserID).Return(nil, domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFoundError,
		},
		{
			name: "Success",
			url:  "/api/v1/player/state?user_id=" + testUserID,
			setupMocks: func(m *MockPlayerService) {
				m.On("GetState", mock.Anything, testUserID).
					Return(&domain.PlayerState{UserID: testUserID, Level: 3, Experience: 2400}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"experience":2400`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockPlayerService)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}
			h := NewPlayerHandler(service)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			h.HandleGetState(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			service.AssertExpectations(t)
		})
	}
}

func TestHandleRecordLogin(t *testing.T) {
	service := new(MockPlayerService)
	service.On("RecordLogin", mock.Anything, testUserID).
		Return(&domain.PlayerState{UserID: testUserID, LoginStreakDays: 5}, nil)
	h := NewPlayerHandler(service)

	body := marshalBody(t, RecordLoginRequest{UserID: testUserID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/player/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleRecordLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"login_streak_days":5`)
}

func TestHandleRegisterPlayer(t *testing.T) {
	service := new(MockPlayerService)
	service.On("EnsurePlayer", mock.Anything, testUserID).
		Return(&domain.PlayerState{UserID: testUserID, Level: 1}, nil)
	h := NewPlayerHandler(service)

	body := marshalBody(t, RegisterPlayerRequest{UserID: testUserID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/player/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleRegisterPlayer(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"level":1`)
}
