package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavigation(t *testing.T) {
	h := New("", 0)
	h.Add("add milk")
	h.Add("add eggs")
	h.Add("add eggs")
	h.Add("   ")

	entry, ok := h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "add eggs", entry)

	entry, ok = h.Previous("ignored")
	require.True(t, ok)
	require.Equal(t, "add milk", entry)

	entry, ok = h.Previous("ignored")
	require.False(t, ok)
	require.Equal(t, "add milk", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "add eggs", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "draft", entry, "navigating past the newest entry restores the draft")

	_, ok = h.Next()
	require.False(t, ok)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_history")
	h := New(path, 2)
	h.Add("add milk")
	h.Add("add 2 eggs\nand a \\ backslash")
	h.Add("add bread")

	reloaded := New(path, 2)
	entry, ok := reloaded.Previous("")
	require.True(t, ok)
	require.Equal(t, "add bread", entry)
	entry, ok = reloaded.Previous("")
	require.True(t, ok)
	require.Equal(t, "add 2 eggs\nand a \\ backslash", entry)
	_, ok = reloaded.Previous("")
	require.False(t, ok, "history is trimmed to its max size")
}
