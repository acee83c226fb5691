package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	player, err := jwtService.GenerateJWT("steve", false, time.Now().Add(time.Hour))
	require.NoError(t, err)
	admin, err := jwtService.GenerateJWT("game-server", true, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var seenAccount string
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAccount = AccountID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	userChain := Middleware(jwtService)(final)
	adminChain := Middleware(jwtService)(RequireAdmin(final))

	tests := []struct {
		name        string
		handler     http.Handler
		header      string
		wantCode    int
		wantAccount string
	}{
		{name: "no header", handler: userChain, wantCode: http.StatusUnauthorized},
		{name: "not bearer", handler: userChain, header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "bad token", handler: userChain, header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "player", handler: userChain, header: "Bearer " + player, wantCode: http.StatusNoContent, wantAccount: "steve"},
		{name: "player on admin route", handler: adminChain, header: "Bearer " + player, wantCode: http.StatusForbidden},
		{name: "admin", handler: adminChain, header: "Bearer " + admin, wantCode: http.StatusNoContent, wantAccount: "game-server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenAccount = ""
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			tt.handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantAccount, seenAccount)
		})
	}
}
