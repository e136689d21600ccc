package session_test

import (
	"context"
	"testing"

	"ehotels/shared/constant"
	"ehotels/shared/session"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name      string
		session   session.Session
		employee  bool
		frontDesk bool
		manager   bool
	}{
		{
			name:      "manager",
			session:   session.Session{UserType: constant.UserTypeEmployee, UserID: 1, Position: constant.PositionManager},
			employee:  true,
			frontDesk: true,
			manager:   true,
		},
		{
			name:      "receptionist",
			session:   session.Session{UserType: constant.UserTypeEmployee, UserID: 2, Position: constant.PositionReceptionist},
			employee:  true,
			frontDesk: true,
		},
		{
			name:      "free text position",
			session:   session.Session{UserType: constant.UserTypeEmployee, UserID: 3, Position: "Concierge"},
			employee:  true,
			frontDesk: true,
		},
		{
			name:     "housekeeper",
			session:  session.Session{UserType: constant.UserTypeEmployee, UserID: 4, Position: constant.PositionHousekeeper},
			employee: true,
		},
		{
			name:    "customer",
			session: session.Session{UserType: constant.UserTypeCustomer, UserID: 3, Position: constant.PositionManager},
		},
		{
			name:    "empty",
			session: session.Session{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.employee, tt.session.IsEmployee())
			assert.Equal(t, tt.frontDesk, tt.session.IsFrontDesk())
			assert.Equal(t, tt.manager, tt.session.IsManager())
		})
	}
}

func TestActor(t *testing.T) {
	assert.Equal(t, "employee:7", session.Session{UserType: constant.UserTypeEmployee, UserID: 7}.Actor())
	assert.Equal(t, constant.ContextSystem, session.Session{}.Actor())
}

func TestContext(t *testing.T) {
	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	want := session.Session{UserType: constant.UserTypeEmployee, UserID: 7, Position: constant.PositionManager}
	got, ok := session.FromContext(session.WithSession(context.Background(), want))

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, session.ActorFromContext(context.Background()))

	ctx := session.WithSession(context.Background(), session.Session{UserType: constant.UserTypeEmployee, UserID: 12})
	assert.Equal(t, "employee:12", session.ActorFromContext(ctx))
}
