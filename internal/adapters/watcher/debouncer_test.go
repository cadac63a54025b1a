package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/w/site.scss")
		time.Sleep(20 * time.Millisecond)
		d.Add("/w/_vars.scss")
		d.Add("/w/site.scss")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/w/_vars.scss", "/w/site.scss"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		d.Add("/w/a.scss")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/w/a.scss")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) { called = true })

		d.Add("/w/a.scss")
		d.Stop()
		d.Add("/w/b.scss")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.False(t, called)
	})
}
