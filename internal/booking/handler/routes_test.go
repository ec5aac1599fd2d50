package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/audit"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/handler"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/service"
	"github.com/Hypereqqq/backend-good-game-vr/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestRegisterRoutes verifies that all routes are mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockRes := mocks.NewMockReservationRepository(ctrl)
	mockCfg := mocks.NewMockConfigRepository(ctrl)

	limiter := service.NewLoginLimiter(5, time.Minute)
	recorder := audit.NewZapRecorder(zap.NewNop())
	authService := service.NewAuthService(mockUsers, limiter, service.BcryptVerifier{}, recorder)
	authHandler := handler.NewAuthHandler(authService)
	reservationHandler := handler.NewReservationHandler(
		service.NewReservationService(mockRes),
		service.NewAppConfigService(mockCfg),
	)

	// The existence check sends empty requests; let repository calls that do
	// fire answer harmlessly.
	mockRes.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRes.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCfg.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, reservationHandler)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/login"},
		{http.MethodGet, "/reservations"},
		{http.MethodPost, "/reservations"},
		{http.MethodPut, "/reservations/1"},
		{http.MethodDelete, "/reservations/1"},
		{http.MethodGet, "/config"},
		{http.MethodPut, "/config"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 from the router means
			// it doesn't. The actual handlers return other codes (e.g. 400
			// Bad Request for a missing body), which is fine for this check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
