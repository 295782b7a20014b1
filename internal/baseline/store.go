package baseline

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/errors"
)

// fileVersion is bumped when the signature inputs change incompatibly
const fileVersion = 1

// File is the on-disk baseline format
type File struct {
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	Signatures []string  `json:"signatures"`
}

// Set is an in-memory baseline lookup
type Set map[string]struct{}

// Contains reports whether a signature is baselined
func (s Set) Contains(signature string) bool {
	_, ok := s[signature]
	return ok
}

// Load reads a baseline file into a lookup set
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewBaselineNotFoundError(path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read baseline: %s", path), err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBaselineInvalid, fmt.Sprintf("failed to parse baseline: %s", path), err).
			WithSuggestion("Re-create the baseline with 'driftscope baseline accept'")
	}

	set := make(Set, len(file.Signatures))
	for _, sig := range file.Signatures {
		set[sig] = struct{}{}
	}
	return set, nil
}

// LoadOrEmpty reads a baseline file, treating a missing file as an empty
// baseline. This is the right behavior for compare runs: no baseline means
// nothing is suppressed.
func LoadOrEmpty(path string) (Set, error) {
	set, err := Load(path)
	if err != nil {
		var derr *errors.DriftscopeError
		if stderrors.As(err, &derr) && derr.Code == errors.ErrCodeBaselineNotFound {
			return Set{}, nil
		}
		return nil, err
	}
	return set, nil
}

// Save writes the signatures of the given signals as the new baseline,
// replacing any previous one. Signatures are deduplicated and sorted so the
// file diffs cleanly under version control.
func Save(path string, signals []entity.DriftSignal, now time.Time) error {
	seen := make(map[string]struct{}, len(signals))
	signatures := make([]string, 0, len(signals))
	for _, sig := range signals {
		signature, err := Signature(sig)
		if err != nil {
			return errors.Wrap(errors.ErrCodeBaselineWrite, "failed to sign drift for baseline", err)
		}
		if _, ok := seen[signature]; ok {
			continue
		}
		seen[signature] = struct{}{}
		signatures = append(signatures, signature)
	}
	sort.Strings(signatures)

	data, err := json.MarshalIndent(File{
		Version:    fileVersion,
		CreatedAt:  now.UTC(),
		Signatures: signatures,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to marshal baseline", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeBaselineWrite, fmt.Sprintf("failed to write baseline: %s", path), err)
	}
	return nil
}

// FilterResult separates new drift from baselined drift
type FilterResult struct {
	NewDrifts      []entity.DriftSignal
	BaselinedCount int
}

// Filter drops signals whose signature is in the baseline set. Order of the
// surviving signals is preserved.
func Filter(signals []entity.DriftSignal, set Set) (FilterResult, error) {
	result := FilterResult{NewDrifts: make([]entity.DriftSignal, 0, len(signals))}
	for _, sig := range signals {
		signature, err := Signature(sig)
		if err != nil {
			return FilterResult{}, err
		}
		if set.Contains(signature) {
			result.BaselinedCount++
			continue
		}
		result.NewDrifts = append(result.NewDrifts, sig)
	}
	return result, nil
}
