package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader = "X-User-ID"
	actorKey     = "actor"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Session resolves the X-User-ID header to the acting user. Requests without
// the header carry no actor, and the engine rejects them where a role is
// required. An unknown id is rejected here with 401.
func Session(users UserLookup) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unknown user"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(actorKey, user)
		c.Next()
	}
}

// Actor returns the user resolved by Session, or nil.
func Actor(c *ginext.Context) *domain.User {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
