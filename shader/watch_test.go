package shader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrites(t *testing.T) {
	vp, fp := writeSources(t, passVertex, constFragment)
	other := filepath.Join(filepath.Dir(fp), "notes.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed, err := Watch(ctx, vp, fp)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(brokenFragment), 0o644))

	want, err := filepath.Abs(fp)
	require.NoError(t, err)
	select {
	case got := <-changed:
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	for range changed {
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "shader.vert"))
	assert.Error(t, err)
}
