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

func TestHandleEnhance(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockEnhanceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid Element",
			reqBody:        EnhanceRequest{UserID: testUserID, ItemID: "jade_sword", Element: "plasma"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid element",
		},
		{
			name:    "Target Not Found",
			reqBody: EnhanceRequest{UserID: testUserID, ItemID: "missing", Element: "fire"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Enhance", mock.Anything, testUserID, "missing", domain.ElementFire).
					Return(nil, domain.ErrTargetNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTargetNotFoundError,
		},
		{
			name:    "Max Tier",
			reqBody: EnhanceRequest{UserID: testUserID, ItemID: "jade_sword", Element: "fire"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Enhance", mock.Anything, testUserID, "jade_sword", domain.ElementFire).
					Return(&domain.EnhanceResult{Outcome: domain.EnhanceMaxTierReached, ItemID: "jade_sword", Tier: 10}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"outcome":"max_tier_reached"`,
		},
		{
			name:    "Success",
			reqBody: EnhanceRequest{UserID: testUserID, ItemID: "jade_sword", Element: "fire"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Enhance", mock.Anything, testUserID, "jade_sword", domain.ElementFire).
					Return(&domain.EnhanceResult{Outcome: domain.EnhanceSuccess, ItemID: "jade_sword", ChancePercent: 90, Tier: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"outcome":"success"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockEnhanceService)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}
			h := NewEnhanceHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/enhance", bytes.NewReader(marshalBody(t, tt.reqBody)))
			rec := httptest.NewRecorder()

			h.HandleEnhance(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			service.AssertExpectations(t)
		})
	}
}

func TestHandleFuse(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockEnhanceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Unknown Recipe",
			reqBody: FuseRequest{UserID: testUserID, RecipeKey: "transmutation"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Fuse", mock.Anything, testUserID, "transmutation").Return(nil, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgRecipeNotFoundError,
		},
		{
			name:    "Insufficient Stock",
			reqBody: FuseRequest{UserID: testUserID, RecipeKey: "steam"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Fuse", mock.Anything, testUserID, "steam").Return(nil, domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInsufficientStockError,
		},
		{
			name:    "Success",
			reqBody: FuseRequest{UserID: testUserID, RecipeKey: "steam"},
			setupMocks: func(m *MockEnhanceService) {
				m.On("Fuse", mock.Anything, testUserID, "steam").
					Return(&domain.FusionResult{RecipeKey: "steam", Produced: domain.ElementWater, Count: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"produced":"water"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockEnhanceService)
			tt.setupMocks(service)
			h := NewEnhanceHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/fusion", bytes.NewReader(marshalBody(t, tt.reqBody)))
			rec := httptest.NewRecorder()

			h.HandleFuse(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRegisterTarget(t *testing.T) {
	service := new(MockEnhanceService)
	service.On("RegisterTarget", mock.Anything, mock.MatchedBy(func(target *domain.EnhancementTarget) bool {
		return target.UserID == testUserID && target.MaxTier == 10 && target.PrimaryElement == domain.ElementFire
	})).Return(nil)
	h := NewEnhanceHandler(service)

	body := marshalBody(t, RegisterTargetRequest{
		UserID:             testUserID,
		ItemID:             "jade_sword",
		MaxTier:            10,
		PrimaryElement:     "fire",
		CompatibleElements: []string{"fire", "wood"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enhance/target", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleRegisterTarget(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgTargetRegistered)
	service.AssertExpectations(t)
}
