package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCachesByIndex(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	first := r.Render(0, "Successfully added 2 items.")
	require.Contains(t, first, "Successfully")

	// Same index returns the cached output even if content differs.
	require.Equal(t, first, r.Render(0, "something else"))

	uncached := r.Render(-1, "- milk\n- eggs")
	require.Contains(t, uncached, "milk")
	require.Contains(t, uncached, "eggs")

	r.Reset()
	require.Contains(t, r.Render(0, "something else"), "else")
}

func TestSetWidth(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)
	r.Render(0, "hello")

	require.NoError(t, r.SetWidth(40))
	require.Equal(t, 40, r.Width())
	require.Empty(t, r.cache, "a new width invalidates cached renders")
}
