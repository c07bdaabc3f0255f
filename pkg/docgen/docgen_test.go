package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uipatterns/pkg/patterns"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(patterns.Default())
	require.NoError(t, err)
	return g
}

func TestRender_ButtonSections(t *testing.T) {
	g := testGenerator(t)
	doc, err := g.Render(patterns.ComponentButton)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# button\n"))
	assert.Contains(t, doc, "## Anatomy")
	assert.Contains(t, doc, "- container (required)")
	assert.Contains(t, doc, "## Variants")
	assert.Contains(t, doc, "primary")
	assert.Contains(t, doc, "## States")
	assert.Contains(t, doc, "### disabled")
	assert.Contains(t, doc, "opacity: 0.5")
	assert.Contains(t, doc, "## Accessibility")
	assert.Contains(t, doc, "### Keyboard")
	assert.Contains(t, doc, "## Usage")
	assert.Contains(t, doc, "## Code")
}

func TestRender_StatesInCanonicalOrder(t *testing.T) {
	g := testGenerator(t)
	doc, err := g.Render(patterns.ComponentCard)
	require.NoError(t, err)

	last := -1
	for _, state := range patterns.AllStates {
		pos := strings.Index(doc, "### "+string(state))
		require.GreaterOrEqual(t, pos, 0, "state %s missing", state)
		assert.Greater(t, pos, last, "state %s out of order", state)
		last = pos
	}
}

func TestRender_AriaSection(t *testing.T) {
	g := testGenerator(t)
	doc, err := g.Render(patterns.ComponentModal)
	require.NoError(t, err)

	assert.Contains(t, doc, "### ARIA")
	assert.Contains(t, doc, "Roles: dialog")
	assert.Contains(t, doc, "aria-modal")
}

func TestRender_NoAriaSectionWhenAbsent(t *testing.T) {
	g := testGenerator(t)
	doc, err := g.Render(patterns.ComponentCard)
	require.NoError(t, err)

	assert.NotContains(t, doc, "### ARIA")
}

func TestRender_Cached(t *testing.T) {
	g := testGenerator(t)
	first, err := g.Render(patterns.ComponentToast)
	require.NoError(t, err)
	second, err := g.Render(patterns.ComponentToast)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, g.cache.Contains(patterns.ComponentToast))
}

func TestRender_UnknownComponent(t *testing.T) {
	g := testGenerator(t)
	_, err := g.Render(patterns.ComponentName("carousel"))
	assert.ErrorIs(t, err, patterns.ErrPatternNotFound)
}

func TestRenderAll(t *testing.T) {
	g := testGenerator(t)
	doc, err := g.RenderAll()
	require.NoError(t, err)

	for _, name := range patterns.CanonicalNames {
		assert.Contains(t, doc, "# "+string(name)+"\n")
	}
	assert.Equal(t, len(patterns.CanonicalNames)-1, strings.Count(doc, "\n---\n"))
}
