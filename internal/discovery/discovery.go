// Package discovery defines the collaborator the gateway forwards to. The
// response payloads belong to the discovery backend; this service carries
// them as raw JSON and never looks inside.
package discovery

import (
	"context"
	"encoding/json"
)

// DiscoveryResponse is the backend's discovery payload, passed through verbatim.
type DiscoveryResponse json.RawMessage

// AllUsersResponse is the backend's combined friends/others payload.
type AllUsersResponse json.RawMessage

type Service interface {
	DiscoverUsers(ctx context.Context, userID string, limit, offset int, suggestionsOnly bool) (DiscoveryResponse, error)
	GetAllUserData(ctx context.Context, userID string, friendsLimit, othersLimit int) (AllUsersResponse, error)
}
