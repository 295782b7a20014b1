package entity

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace is the fixed UUIDv5 namespace for all driftscope identities.
// Ids must be pure functions of stable fields: the same inputs yield the
// same id across processes and runs, which is what makes re-runs idempotent
// and baseline suppression possible.
var idNamespace = uuid.MustParse("b4c1d8a2-7e35-4f6b-9d20-5a8c3e91f047")

// ComponentID derives the deterministic id for a component scanned from the
// given source under the given name
func ComponentID(source ComponentSource, name string) string {
	return uuid.NewSHA1(idNamespace, []byte("component|"+source.identityKey()+"|"+name)).String()
}

// TokenID derives the deterministic id for a design token
func TokenID(source TokenSource, name string) string {
	return uuid.NewSHA1(idNamespace, []byte("token|"+source.identityKey()+"|"+name)).String()
}

// DriftID derives the deterministic id for a drift signal from its type and
// the minimal key fields that define its identity. Callers must pass the key
// fields in a fixed order, never derived from map iteration.
func DriftID(driftType DriftType, keys ...string) string {
	parts := append([]string{"drift", string(driftType)}, keys...)
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(parts, "|"))).String()
}
