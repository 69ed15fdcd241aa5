package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giftmart/giftadmin/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tokens := auth.NewAuthToken([]byte("0123456789abcdef"))
	valid, err := tokens.CreateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		wantStatusCode int
		wantSubject    string
	}{
		{
			name:           "valid_token_passes",
			header:         "Bearer " + valid,
			wantStatusCode: http.StatusOK,
			wantSubject:    "admin",
		},
		{
			name:           "missing_header_rejected",
			header:         "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "malformed_header_rejected",
			header:         valid,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "garbage_token_rejected",
			header:         "Bearer not.a.token",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if payload, ok := Payload(r.Context()); ok {
					gotSubject = payload.Subject
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			Auth(tokens)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Result().StatusCode)
			if tt.wantSubject != "" {
				assert.Equal(t, tt.wantSubject, gotSubject)
			}
		})
	}
}
