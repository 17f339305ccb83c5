package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() domain.Claims {
	return domain.Claims{
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  domain.RoleSales,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "idp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{Secret: testSecret, Issuer: "idp"}})

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected error
	}{
		{
			name: "Token válido",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())
			},
		},
		{
			name: "Token expirado",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			expected: ErrExpiredToken,
		},
		{
			name: "Token sem expiração",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = nil
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			expected: ErrInvalidToken,
		},
		{
			name: "Assinatura com outro segredo",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("outro"), validClaims())
			},
			expected: ErrInvalidToken,
		},
		{
			name: "Algoritmo diferente de HS256",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())
			},
			expected: ErrInvalidToken,
		},
		{
			name: "Emissor diferente",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Issuer = "outro-idp"
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			expected: ErrInvalidToken,
		},
		{
			name: "Token sem subject",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Subject = ""
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			expected: ErrMissingUser,
		},
		{
			name: "Texto que não é token",
			token: func(t *testing.T) string {
				return "abc.def"
			},
			expected: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.True(t, IsAuthorizationError(err))
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID())
			assert.Equal(t, domain.RoleSales, claims.Role)
		})
	}
}

func TestValidateTokenSemSegredo(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.False(t, IsAuthorizationError(err))
}
