package match

import (
	"strings"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// matchContext memoizes canonical names and derived lowercase metadata sets
// for the duration of one matching call. A fresh context is built per call
// and discarded with it: contexts are not safe for concurrent reuse and must
// never outlive the call that created them.
type matchContext struct {
	canonical map[string]string
	props     map[string]map[string]struct{}
	variants  map[string]map[string]struct{}
	deps      map[string]map[string]struct{}
}

func newMatchContext() *matchContext {
	return &matchContext{
		canonical: make(map[string]string),
		props:     make(map[string]map[string]struct{}),
		variants:  make(map[string]map[string]struct{}),
		deps:      make(map[string]map[string]struct{}),
	}
}

func (mc *matchContext) canonicalName(c *entity.Component) string {
	if v, ok := mc.canonical[c.ID]; ok {
		return v
	}
	v := CanonicalName(c.Name)
	mc.canonical[c.ID] = v
	return v
}

func (mc *matchContext) propSet(c *entity.Component) map[string]struct{} {
	if v, ok := mc.props[c.ID]; ok {
		return v
	}
	v := make(map[string]struct{}, len(c.Props))
	for _, p := range c.Props {
		v[strings.ToLower(p.Name)] = struct{}{}
	}
	mc.props[c.ID] = v
	return v
}

func (mc *matchContext) variantSet(c *entity.Component) map[string]struct{} {
	if v, ok := mc.variants[c.ID]; ok {
		return v
	}
	v := make(map[string]struct{}, len(c.Variants))
	for _, variant := range c.Variants {
		v[strings.ToLower(variant.Name)] = struct{}{}
	}
	mc.variants[c.ID] = v
	return v
}

func (mc *matchContext) depSet(c *entity.Component) map[string]struct{} {
	if v, ok := mc.deps[c.ID]; ok {
		return v
	}
	v := make(map[string]struct{}, len(c.Dependencies))
	for _, d := range c.Dependencies {
		v[strings.ToLower(d)] = struct{}{}
	}
	mc.deps[c.ID] = v
	return v
}
