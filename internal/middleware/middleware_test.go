package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type userMap map[string]*domain.User

func (m userMap) GetByID(_ context.Context, id string) (*domain.User, error) {
	if id == "broken" {
		return nil, errors.New("db down")
	}
	u, ok := m[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newTestRouter(t *testing.T) *ginext.Engine {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	users := userMap{"c1": {ID: "c1", Role: domain.RoleConsumer}}

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log), Session(users))
	r.GET("/whoami", func(c *ginext.Context) {
		if u := Actor(c); u != nil {
			c.JSON(http.StatusOK, ginext.H{"id": u.ID})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"id": ""})
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func TestSession(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		userID   string
		wantCode int
		wantBody string
	}{
		{"anonymous", "", http.StatusOK, `{"id":""}`},
		{"known user", "c1", http.StatusOK, `{"id":"c1"}`},
		{"unknown user", "ghost", http.StatusUnauthorized, `{"error":"unknown user"}`},
		{"lookup failure", "broken", http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.userID != "" {
				req.Header.Set(UserIDHeader, tt.userID)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
