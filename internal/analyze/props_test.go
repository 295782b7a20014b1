package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func withProps(name string, props ...entity.Prop) *entity.Component {
	c := named(name)[0]
	c.Props = props
	return c
}

func TestPropTypeDominance(t *testing.T) {
	components := []*entity.Component{
		withProps("Button", entity.Prop{Name: "size", Type: "string"}),
		withProps("Card", entity.Prop{Name: "size", Type: "string"}),
		withProps("Badge", entity.Prop{Name: "size", Type: "number"}),
	}

	dominance := PropTypeDominance(components)

	assert.Equal(t, "string", dominance["size"])
}

func TestPropTypeDominanceRequiresTwoComponents(t *testing.T) {
	components := []*entity.Component{
		withProps("Button", entity.Prop{Name: "size", Type: "string"}),
	}

	assert.Empty(t, PropTypeDominance(components))
}

func TestPropTypeDominanceTieYieldsNothing(t *testing.T) {
	components := []*entity.Component{
		withProps("Button", entity.Prop{Name: "size", Type: "string"}),
		withProps("Card", entity.Prop{Name: "size", Type: "number"}),
	}

	dominance := PropTypeDominance(components)

	_, ok := dominance["size"]
	assert.False(t, ok, "a tie has no dominant type")
}

func TestPropTypeDominanceCaseFoldsNames(t *testing.T) {
	components := []*entity.Component{
		withProps("Button", entity.Prop{Name: "Size", Type: "string"}),
		withProps("Card", entity.Prop{Name: "size", Type: "string"}),
	}

	dominance := PropTypeDominance(components)

	assert.Equal(t, "string", dominance["size"])
}
