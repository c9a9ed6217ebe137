// Package v1 implements the v1 API of the daily envelope backend.
package v1

import (
	"github.com/daily-envelope/backend/internal/session"
)

// Controller carries the dependencies for the v1 API handlers.
type Controller struct {
	Session *session.Session
}
