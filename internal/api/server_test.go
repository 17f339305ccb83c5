package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	dashboardmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard/mocks"
	orderingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/ordering/mocks"
	targetingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "segredo"},
	}

	ctrl := gomock.NewController(t)
	mockDashboard := dashboardmocks.NewMockDashboarder(ctrl)
	mockOrders := orderingmocks.NewMockManualOrderService(ctrl)
	mockTargets := targetingmocks.NewMockTargeter(ctrl)

	h := NewHandler(cfg, mockDashboard, mockOrders, mockTargets, authenticating.NewService(cfg), handler.CronJobServices{})

	t.Run("Healthcheck sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/manual-orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token válido chega ao serviço com o usuário do token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("segredo"))
		require.NoError(t, err)

		mockOrders.EXPECT().ListOrders(gomock.Any(), "user-42").Return([]domain.ManualOrder{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/manual-orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
