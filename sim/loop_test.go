package sim

import (
	"context"
	"testing"
	"time"

	cfg "github.com/automoto/platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type trace struct {
	calls []string
}

func (tr *trace) record(name string) {
	tr.calls = append(tr.calls, name)
}

func newTestLoop(t *testing.T, step float64, maxSteps int) (*Loop, *trace) {
	t.Helper()
	t.Cleanup(cfg.Reset)
	cfg.Physics.FixedStep = step
	cfg.Physics.MaxFixedSteps = maxSteps

	tr := &trace{}
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(func(*ecs.ECS) { tr.record("frame") })
	return NewLoop(e, nil,
		func(*ecs.ECS) { tr.record("motion") },
		func(*ecs.ECS) { tr.record("physics") },
	), tr
}

func TestAdvanceStepCounts(t *testing.T) {
	cases := []struct {
		name  string
		dts   []float64
		steps []int
		carry float64
	}{
		{"short frame runs no step", []float64{0.125}, []int{0}, 0.125},
		{"remainder carries over", []float64{0.125, 0.125}, []int{0, 1}, 0},
		{"one step per frame", []float64{0.25, 0.25}, []int{1, 1}, 0},
		{"long frame catches up", []float64{0.75}, []int{3}, 0},
		{"partial step kept", []float64{0.375}, []int{1}, 0.125},
		{"cap drops whole steps", []float64{2.125}, []int{4}, 0.125},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			loop, _ := newTestLoop(t, 0.25, 4)
			for i, dt := range c.dts {
				assert.Equal(t, c.steps[i], loop.Advance(dt), "frame %d", i)
			}
			assert.InDelta(t, c.carry, loop.Accumulated(), 1e-9)
			assert.Equal(t, uint64(len(c.dts)), loop.Frames())
		})
	}
}

func TestAdvanceOrder(t *testing.T) {
	loop, tr := newTestLoop(t, 0.25, 4)

	loop.Advance(0.5)

	assert.Equal(t, []string{"motion", "physics", "motion", "physics", "frame"}, tr.calls)
}

func TestAdvanceReadsStepEachFrame(t *testing.T) {
	loop, _ := newTestLoop(t, 0.25, 4)
	require.Equal(t, 1, loop.Advance(0.25))

	cfg.Physics.FixedStep = 0.125
	assert.Equal(t, 2, loop.Advance(0.25))
}

func TestRunStopsOnCancel(t *testing.T) {
	loop, _ := newTestLoop(t, 0.25, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx, 240)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, loop.Frames())
}

func TestRunRejectsBadTPS(t *testing.T) {
	loop, _ := newTestLoop(t, 0.25, 4)
	require.Error(t, loop.Run(context.Background(), 0))
	assert.Equal(t, uint64(0), loop.Frames())
}
