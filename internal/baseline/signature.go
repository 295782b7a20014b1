// Package baseline persists accepted drift signatures and filters them out
// of later runs. A signature is a stable fingerprint of a drift: it survives
// re-runs, process restarts, and line shifts in the scanned sources.
package baseline

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// Canonicalize returns the canonical JSON representation of a drift signal's
// identity fields with stable key ordering. Line numbers and timestamps are
// deliberately absent: a drift that merely moved within a file keeps its
// signature.
func Canonicalize(signal entity.DriftSignal) ([]byte, error) {
	data := map[string]interface{}{
		"type":    string(signal.Type),
		"entity":  signal.Source.EntityName,
		"file":    signal.Source.File,
		"message": signal.Message,
		"value":   signal.Details.Actual,
	}
	return json.Marshal(sortKeys(data))
}

// Signature computes the blake3 fingerprint of a canonicalized drift signal
func Signature(signal entity.DriftSignal) (string, error) {
	canonical, err := Canonicalize(signal)
	if err != nil {
		return "", fmt.Errorf("canonicalize drift: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash drift: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// sortKeys recursively sorts map keys for stable JSON output
func sortKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sorted := make(map[string]interface{}, len(val))
		for _, k := range keys {
			sorted[k] = sortKeys(val[k])
		}
		return sorted

	case []interface{}:
		for i, item := range val {
			val[i] = sortKeys(item)
		}
		return val

	default:
		return v
	}
}
