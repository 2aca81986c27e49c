package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/mocks"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthMiddleware_PanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewAuthMiddleware(nil) })
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	adminClaims := &auth.Claims{Username: "root", UserID: 1, UserRole: "admin"}

	tests := []struct {
		name          string
		header        string
		validateErr   error
		wantStatus    int
		wantClaims    *auth.Claims
		wantNextCalls bool
	}{
		{
			name:          "no header passes through without claims",
			wantStatus:    http.StatusOK,
			wantNextCalls: true,
		},
		{
			name:          "valid token stores claims",
			header:        "Bearer good-token",
			wantStatus:    http.StatusOK,
			wantClaims:    adminClaims,
			wantNextCalls: true,
		},
		{
			name:          "lowercase scheme accepted",
			header:        "bearer good-token",
			wantStatus:    http.StatusOK,
			wantClaims:    adminClaims,
			wantNextCalls: true,
		},
		{
			name:       "wrong scheme rejected",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token rejected",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token rejected",
			header:      "Bearer old-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "invalid token rejected",
			header:      "Bearer forged-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
					if tt.validateErr != nil {
						return nil, tt.validateErr
					}
					assert.Equal(t, "good-token", token)
					return adminClaims, nil
				},
			}

			var called bool
			var gotClaims *auth.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotClaims = shared.GetClaims(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/todo", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalls, called)
			assert.Equal(t, tt.wantClaims, gotClaims)

			if tt.wantStatus == http.StatusUnauthorized {
				var body shared.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, MsgInvalidCredentials, body.Error)
			}
		})
	}
}
