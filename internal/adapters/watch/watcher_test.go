package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) onChange(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

func TestWatcher_DebouncesWritesToTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "main.js")
	require.NoError(t, os.WriteFile(target, []byte("a();\n"), 0644))

	rec := &recorder{}
	w, err := NewWatcher(target, rec.onChange, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	// A burst of writes settles into one rebuild
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("b();\n"), 0644))
	}
	// Sibling files never trigger
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main_1.ppw.js"), []byte("x"), 0644))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 1, w.Runs())

	abs, _ := filepath.Abs(target)
	assert.Equal(t, abs, rec.paths[0])

	w.Stop()
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	target := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(target, (&recorder{}).onChange)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	w.Stop()
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "main.js"), (&recorder{}).onChange)
	require.NoError(t, err)
	w.Stop()
}

func TestNewWatcher_RequiresCallback(t *testing.T) {
	_, err := NewWatcher("main.js", nil)
	assert.Error(t, err)
}

func TestStart_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "gone", "main.js"), (&recorder{}).onChange)
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Start(context.Background()))
}
