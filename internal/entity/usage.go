package entity

// Usage records externally-counted references per entity name. A nil map
// means no usage data was collected, which is different from zero usages.
type Usage struct {
	ComponentRefs map[string]int `json:"componentRefs,omitempty" yaml:"componentRefs,omitempty"`
	TokenRefs     map[string]int `json:"tokenRefs,omitempty" yaml:"tokenRefs,omitempty"`
}
