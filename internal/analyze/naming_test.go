package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func named(names ...string) []*entity.Component {
	components := make([]*entity.Component, len(names))
	for i, n := range names {
		src := entity.ComponentSource{Kind: entity.SourceFrameworkComponent, FilePath: "src/" + n + ".tsx"}
		components[i] = &entity.Component{ID: entity.ComponentID(src, n), Name: n, Source: src}
	}
	return components
}

func TestDetectConvention(t *testing.T) {
	tests := []struct {
		name string
		want Convention
	}{
		{"Button", ConventionPascal},
		{"UserCard", ConventionPascal},
		{"userCard", ConventionCamel},
		{"user-card", ConventionKebab},
		{"user_card", ConventionSnake},
		{"button", ConventionLower},
		{"User-Card", ConventionUnknown},
		{"", ConventionUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectConvention(tt.name), tt.name)
	}
}

func TestMajorityConvention(t *testing.T) {
	components := named("Button", "UserCard", "NavBar", "footer-nav")
	assert.Equal(t, ConventionPascal, MajorityConvention(components))
}

func TestMajorityConventionTieBreaksByPriority(t *testing.T) {
	components := named("Button", "user-card")
	assert.Equal(t, ConventionPascal, MajorityConvention(components))
}

func TestMajorityConventionEmptyBatch(t *testing.T) {
	assert.Equal(t, ConventionUnknown, MajorityConvention(nil))
}

func TestFollows(t *testing.T) {
	assert.True(t, Follows("UserCard", ConventionPascal))
	assert.False(t, Follows("user-card", ConventionPascal))
	assert.False(t, Follows("button", ConventionPascal))

	// A bare lowercase word is ambiguous and satisfies non-Pascal conventions
	assert.True(t, Follows("button", ConventionKebab))
	assert.True(t, Follows("button", ConventionCamel))
}
