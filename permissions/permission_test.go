package permissions_test

import (
	"net/http"
	"strings"
	"testing"

	"ehotels/permissions"
	"ehotels/shared/constant"
	"ehotels/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	manager      = session.Session{UserType: constant.UserTypeEmployee, UserID: 1, Position: constant.PositionManager}
	receptionist = session.Session{UserType: constant.UserTypeEmployee, UserID: 2, Position: constant.PositionReceptionist}
	housekeeper  = session.Session{UserType: constant.UserTypeEmployee, UserID: 3, Position: constant.PositionHousekeeper}
	customer     = session.Session{UserType: constant.UserTypeCustomer, UserID: 3}
)

func TestCapability_Allows(t *testing.T) {
	assert.True(t, permissions.CapabilityPublic.Allows(session.Session{}))

	assert.True(t, permissions.CapabilityFrontDesk.Allows(manager))
	assert.True(t, permissions.CapabilityFrontDesk.Allows(receptionist))
	assert.False(t, permissions.CapabilityFrontDesk.Allows(housekeeper))
	assert.False(t, permissions.CapabilityFrontDesk.Allows(customer))

	assert.True(t, permissions.CapabilityManager.Allows(manager))
	assert.False(t, permissions.CapabilityManager.Allows(receptionist))
	assert.False(t, permissions.CapabilityManager.Allows(customer))

	assert.False(t, permissions.Capability("admin").Allows(manager))
}

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	for _, endpoint := range data.Endpoints {
		if strings.HasPrefix(endpoint.Path, "/employee/") {
			assert.NotEqual(t, permissions.CapabilityPublic, endpoint.Capability, "%s %s must require an employee", endpoint.Method, endpoint.Path)
		}
	}

	hotelAdd, ok := data.FindPermissions("/employee/hotels/add", http.MethodPost)
	require.True(t, ok)
	assert.Equal(t, permissions.CapabilityManager, hotelAdd.Capability)

	dashboard, ok := data.FindPermissions("/employee/dashboard", http.MethodGet)
	require.True(t, ok)
	assert.Equal(t, permissions.CapabilityFrontDesk, dashboard.Capability)

	_, ok = data.FindPermissions("/employee/dashboard", http.MethodDelete)
	assert.False(t, ok)
}

func TestParse_RejectsUnknownCapability(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/x","method":"GET","capability":"admin"}]}`))
	assert.ErrorContains(t, err, "unknown capability")

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
