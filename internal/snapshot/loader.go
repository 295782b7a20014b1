// Package snapshot loads normalized component and token snapshots from disk.
// Snapshots are produced by external scanners; this package only reads the
// normalized schema, merges files, and fills in deterministic ids. The drift
// engine itself never touches the filesystem.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/errors"
)

// MaxWorkers caps parallel file parsing
const MaxWorkers = 64

// File is the on-disk snapshot schema, one file per scanner run. Several
// files can be merged into one Snapshot via glob patterns.
type File struct {
	Version    int                   `json:"version,omitempty" yaml:"version,omitempty"`
	Frameworks []string              `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	Components []*entity.Component   `json:"components,omitempty" yaml:"components,omitempty"`
	Tokens     []*entity.DesignToken `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Usage      entity.Usage          `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// LoadError is a non-fatal per-file failure. Loading continues past broken
// files so one bad scanner output does not hide the rest of the drift.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Snapshot is the merged, deterministic view over all loaded files
type Snapshot struct {
	Components []*entity.Component
	Tokens     []*entity.DesignToken
	Frameworks []string
	Usage      entity.Usage

	// Errors lists files that matched but could not be loaded
	Errors []LoadError
}

// Empty reports whether the snapshot holds no entities at all
func (s *Snapshot) Empty() bool {
	return len(s.Components) == 0 && len(s.Tokens) == 0
}

// Loader reads snapshot files matching glob patterns
type Loader struct {
	workers int
}

// NewLoader returns a loader parsing up to workers files in parallel.
// workers <= 0 means GOMAXPROCS.
func NewLoader(workers int) *Loader {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	return &Loader{workers: workers}
}

// Load expands the patterns, parses every matching file, and merges the
// results into one snapshot. Entities are sorted and re-keyed with
// deterministic ids, so identical inputs always yield an identical snapshot
// regardless of glob order or parse concurrency.
func (l *Loader) Load(ctx context.Context, patterns ...string) (*Snapshot, error) {
	paths, err := expand(patterns)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	var mu sync.Mutex
	files := make(map[string]*File, len(paths))
	var loadErrors []LoadError

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			file, err := parseFile(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				loadErrors = append(loadErrors, LoadError{Path: path, Err: err})
				return nil
			}
			files[path] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := merge(paths, files)
	snap.Errors = loadErrors

	if snap.Empty() && len(loadErrors) == 0 {
		return nil, errors.New(errors.ErrCodeSnapshotEmpty,
			fmt.Sprintf("no components or tokens in %s", strings.Join(patterns, ", "))).
			WithSuggestion("Check that the scanner wrote entities into the snapshot files")
	}
	return snap, nil
}

// expand resolves glob patterns to a sorted, deduplicated file list. A
// pattern with zero matches is an error: a typo in a path must not silently
// produce an empty snapshot.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeSnapshotInvalid,
				fmt.Sprintf("invalid snapshot pattern: %s", pattern), err)
		}
		if len(matches) == 0 {
			return nil, errors.NewSnapshotNotFoundError(pattern)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func parseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("failed to read snapshot: %s", path), err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.NewSnapshotUnmarshalError(path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.NewSnapshotUnmarshalError(path, err)
		}
	}
	return &file, nil
}

// merge folds per-file contents into one snapshot in path order, then
// normalizes: deterministic ids, normalized token values, stable sort.
func merge(paths []string, files map[string]*File) *Snapshot {
	snap := &Snapshot{}
	frameworks := make(map[string]struct{})

	for _, path := range paths {
		file, ok := files[path]
		if !ok {
			continue
		}

		for _, f := range file.Frameworks {
			frameworks[f] = struct{}{}
		}
		for _, c := range file.Components {
			c.ID = entity.ComponentID(c.Source, c.Name)
			if c.Source.Framework != "" {
				frameworks[c.Source.Framework] = struct{}{}
			}
			snap.Components = append(snap.Components, c)
		}
		for _, t := range file.Tokens {
			t.ID = entity.TokenID(t.Source, t.Name)
			// Category may be declared at either level in scanner output
			if t.Value.Category == "" {
				t.Value.Category = t.Category
			}
			if t.Category == "" {
				t.Category = t.Value.Category
			}
			if t.Category == entity.CategoryColor {
				t.Value.Hex = entity.NormalizeHex(t.Value.Hex)
			}
			snap.Tokens = append(snap.Tokens, t)
		}

		mergeCounts(&snap.Usage.ComponentRefs, file.Usage.ComponentRefs)
		mergeCounts(&snap.Usage.TokenRefs, file.Usage.TokenRefs)
	}

	sort.SliceStable(snap.Components, func(i, j int) bool {
		a, b := snap.Components[i], snap.Components[j]
		if a.Source.File() != b.Source.File() {
			return a.Source.File() < b.Source.File()
		}
		return a.Name < b.Name
	})
	sort.SliceStable(snap.Tokens, func(i, j int) bool {
		return snap.Tokens[i].Name < snap.Tokens[j].Name
	})

	for f := range frameworks {
		snap.Frameworks = append(snap.Frameworks, f)
	}
	sort.Strings(snap.Frameworks)

	return snap
}

func mergeCounts(dst *map[string]int, src map[string]int) {
	if src == nil {
		return
	}
	if *dst == nil {
		*dst = make(map[string]int, len(src))
	}
	for k, v := range src {
		(*dst)[k] += v
	}
}
