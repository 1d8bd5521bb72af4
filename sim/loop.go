// Package sim drives the world: physics-rate systems from an accumulator,
// then the once-per-frame pass.
package sim

import (
	"context"
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type Loop struct {
	ecs   *ecs.ECS
	fixed []ecs.System
	log   *zap.Logger

	accumulator float64
	frames      uint64
}

// NewLoop runs fixed on every physics step and the ECS's own systems once
// per frame. Step length and cap are read from cfg.Physics on every frame.
func NewLoop(ecs *ecs.ECS, logger *zap.Logger, fixed ...ecs.System) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		ecs:   ecs,
		fixed: fixed,
		log:   logger.Named("loop"),
	}
}

// Advance moves the simulation forward by dt seconds and returns the number
// of fixed steps run. Time beyond the per-frame cap is dropped.
func (l *Loop) Advance(dt float64) int {
	step := cfg.Physics.FixedStep
	l.accumulator += dt

	steps := 0
	for l.accumulator >= step && steps < cfg.Physics.MaxFixedSteps {
		for _, s := range l.fixed {
			s(l.ecs)
		}
		l.accumulator -= step
		steps++
	}

	if l.accumulator >= step {
		dropped := l.accumulator - math.Mod(l.accumulator, step)
		l.accumulator -= dropped
		l.log.Debug("dropping simulation time",
			zap.Uint64("frame", l.frames),
			zap.Float64("seconds", dropped))
	}

	l.ecs.Update()
	l.frames++
	return steps
}

// Accumulated returns the simulation time carried into the next frame.
func (l *Loop) Accumulated() float64 {
	return l.accumulator
}

// Frames returns the number of frames advanced so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run advances the loop in real time at tps frames per second until ctx is
// done. It is the windowless counterpart of the ebiten host.
func (l *Loop) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("run loop: tps must be positive, got %d", tps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	l.log.Info("loop started", zap.Int("tps", tps))
	dt := 1 / float64(tps)

	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop stopped", zap.Uint64("frames", l.frames))
			return ctx.Err()
		case <-ticker.C:
			l.Advance(dt)
		}
	}
}
