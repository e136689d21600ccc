// Package session carries the authenticated caller through a request.
package session

import (
	"context"
	"fmt"

	"ehotels/shared/constant"
)

// Session is decoded once per request from a verified access token.
type Session struct {
	AccountID int64
	UserType  string
	UserID    int64
	Position  string
}

func (s Session) IsEmployee() bool {
	return s.UserType == constant.UserTypeEmployee && s.UserID > 0
}

func (s Session) IsManager() bool {
	return s.IsEmployee() && s.Position == constant.PositionManager
}

// IsFrontDesk reports whether the caller may work the front desk: any
// employee except housekeeping staff.
func (s Session) IsFrontDesk() bool {
	return s.IsEmployee() && s.Position != constant.PositionHousekeeper
}

// Actor is the value written to the created_by / modified_by audit columns.
func (s Session) Actor() string {
	if s.UserType == "" {
		return constant.ContextSystem
	}

	return fmt.Sprintf("%s:%d", s.UserType, s.UserID)
}

func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, sess)
}

// FromContext returns the session stored by the auth middleware, if any.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(constant.ContextKeySession).(Session)

	return sess, ok
}

// ActorFromContext returns the audit actor of the request, "system" when no
// session is attached.
func ActorFromContext(ctx context.Context) string {
	sess, _ := FromContext(ctx)

	return sess.Actor()
}
