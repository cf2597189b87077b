package viewer

import (
	"sync/atomic"
	"testing"

	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/fosdem/trisurface/lib/rendering/glfake"
	"github.com/fosdem/trisurface/lib/stats"
	"github.com/fosdem/trisurface/lib/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	swaps      int
	closeAfter int
}

func (f *fakeSink) SwapBuffers() {
	f.swaps++
}

func (f *fakeSink) ShouldClose() bool {
	return f.swaps >= f.closeAfter
}

func TestRunLoopUntilWindowCloses(t *testing.T) {
	ctx := glfake.New()
	surf, err := surface.New(ctx, surface.ExplicitGeometry)
	require.NoError(t, err)
	ctx.Reset()

	sink := &fakeSink{closeAfter: 5}
	polls := 0
	var stop atomic.Bool
	st := stats.New()

	frames := runLoop(surf, sink, func() { polls++ }, &stop, st)

	assert.Equal(t, uint64(5), frames)
	assert.Equal(t, 5, sink.swaps)
	assert.Equal(t, 5, polls)
	assert.Equal(t, 5, ctx.Count("ClearColorBuffer"))
	assert.Equal(t, 5, ctx.Count("DrawTriangles"))
	assert.Equal(t, uint64(5), st.Snapshot().FramesRendered)
	assert.True(t, stop.Load())

	surf.Destroy()
	assert.Empty(t, ctx.Live())
}

func TestRunLoopStopRequested(t *testing.T) {
	ctx := glfake.New()
	surf, err := surface.New(ctx, surface.ImplicitGeometry)
	require.NoError(t, err)
	defer surf.Destroy()

	sink := &fakeSink{closeAfter: 1000}
	var stop atomic.Bool
	polls := 0

	frames := runLoop(surf, sink, func() {
		polls++
		if polls == 3 {
			stop.Store(true)
		}
	}, &stop, stats.New())

	assert.Equal(t, uint64(3), frames)
	assert.Zero(t, ctx.Created(rendering.BufferResource))
}

func TestRunLoopAlreadyStopped(t *testing.T) {
	ctx := glfake.New()
	surf, err := surface.New(ctx, surface.ImplicitGeometry)
	require.NoError(t, err)
	defer surf.Destroy()
	ctx.Reset()

	var stop atomic.Bool
	stop.Store(true)

	frames := runLoop(surf, &fakeSink{}, func() {}, &stop, stats.New())
	assert.Zero(t, frames)
	assert.Empty(t, ctx.Calls)
}
