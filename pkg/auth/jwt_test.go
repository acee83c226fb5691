package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWTClaims(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := jwtService.GenerateJWT("steve", true, expires)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*Claims)

	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
	assert.Equal(t, "steve", claims.AccountID)
	assert.Equal(t, "steve", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
	assert.True(t, claims.Admin)
	assert.Equal(t, expires.Unix(), claims.ExpiresAt)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
		wantAdmin   bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("steve", false, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name: "Admin Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("game-server", true, time.Now().Add(time.Hour))
				return token
			},
			wantAdmin: true,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("steve", false, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Other Secret",
			setup: func() string {
				token, _ := NewJWTService("another-secret").GenerateJWT("steve", true, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing Account",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, tt.wantAdmin, claims.Admin)
			}
		})
	}
}
