package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func TestFindDifferencesMissingRequiredProp(t *testing.T) {
	source := &entity.Component{Name: "Button", Props: []entity.Prop{
		{Name: "onClick", Type: "function", Required: true},
	}}
	target := &entity.Component{Name: "Button"}

	diffs := FindDifferences(source, target)

	require.Len(t, diffs, 1)
	assert.Equal(t, "props.onClick", diffs[0].Field)
	assert.Equal(t, entity.SeverityWarning, diffs[0].Severity)
	assert.Equal(t, "function", diffs[0].SourceValue)
	assert.Empty(t, diffs[0].TargetValue)
}

func TestFindDifferencesMissingOptionalProp(t *testing.T) {
	source := &entity.Component{Name: "Button", Props: []entity.Prop{
		{Name: "icon", Type: "string"},
	}}
	target := &entity.Component{Name: "Button"}

	diffs := FindDifferences(source, target)

	require.Len(t, diffs, 1)
	assert.Equal(t, entity.SeverityInfo, diffs[0].Severity)
}

func TestFindDifferencesTypeMismatch(t *testing.T) {
	source := &entity.Component{Name: "Button", Props: []entity.Prop{
		{Name: "size", Type: "string"},
	}}
	target := &entity.Component{Name: "Button", Props: []entity.Prop{
		{Name: "Size", Type: "number"},
	}}

	diffs := FindDifferences(source, target)

	require.Len(t, diffs, 1)
	assert.Equal(t, "props.size.type", diffs[0].Field)
	assert.Equal(t, "string", diffs[0].SourceValue)
	assert.Equal(t, "number", diffs[0].TargetValue)
	assert.Equal(t, entity.SeverityWarning, diffs[0].Severity)
}

func TestFindDifferencesTargetOnlyProp(t *testing.T) {
	source := &entity.Component{Name: "Button"}
	target := &entity.Component{Name: "Button", Props: []entity.Prop{
		{Name: "variant", Type: "string"},
	}}

	diffs := FindDifferences(source, target)

	require.Len(t, diffs, 1)
	assert.Equal(t, "props.variant", diffs[0].Field)
	assert.Equal(t, entity.SeverityInfo, diffs[0].Severity)
	assert.Empty(t, diffs[0].SourceValue)
}

func TestFindDifferencesOrderIsStable(t *testing.T) {
	source := &entity.Component{Name: "Card", Props: []entity.Prop{
		{Name: "title", Type: "string", Required: true},
		{Name: "body", Type: "string"},
	}}
	target := &entity.Component{Name: "Card", Props: []entity.Prop{
		{Name: "footer", Type: "string"},
	}}

	diffs := FindDifferences(source, target)

	require.Len(t, diffs, 3)
	assert.Equal(t, "props.title", diffs[0].Field)
	assert.Equal(t, "props.body", diffs[1].Field)
	assert.Equal(t, "props.footer", diffs[2].Field)
}

func TestFindDifferencesIdenticalProps(t *testing.T) {
	props := []entity.Prop{{Name: "label", Type: "string", Required: true}}
	source := &entity.Component{Name: "Button", Props: props}
	target := &entity.Component{Name: "Button", Props: props}

	assert.Empty(t, FindDifferences(source, target))
}
