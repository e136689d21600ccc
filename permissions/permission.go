package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"ehotels/shared/session"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Capability string

const (
	// CapabilityPublic skips authentication entirely.
	CapabilityPublic Capability = "public"
	// CapabilityFrontDesk admits every employee except housekeeping.
	CapabilityFrontDesk Capability = "front_desk"
	// CapabilityManager admits employees whose position is Manager.
	CapabilityManager Capability = "manager"
)

// Allows reports whether sess holds the capability.
func (c Capability) Allows(sess session.Session) bool {
	switch c {
	case CapabilityPublic:
		return true
	case CapabilityFrontDesk:
		return sess.IsFrontDesk()
	case CapabilityManager:
		return sess.IsManager()
	default:
		return false
	}
}

type Permission struct {
	Path       string     `json:"path"`
	Method     string     `json:"method"`
	Capability Capability `json:"capability"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
}

// FindPermissions looks up a chi route pattern. The second value is false when
// the route is not declared, which callers must treat as forbidden.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

// Parse decodes a permission table and rejects unknown capabilities.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	known := []Capability{CapabilityPublic, CapabilityFrontDesk, CapabilityManager}
	for _, endpoint := range permissions.Endpoints {
		if !slices.Contains(known, endpoint.Capability) {
			return nil, fmt.Errorf("unknown capability %q for %s %s", endpoint.Capability, endpoint.Method, endpoint.Path)
		}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
