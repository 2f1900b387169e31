// cmd/arena/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/colindj1120/Games/pkg/config"
	"github.com/colindj1120/Games/pkg/engine"
	"github.com/colindj1120/Games/pkg/entity"
	"github.com/colindj1120/Games/pkg/event"
	"github.com/colindj1120/Games/pkg/logging"
	"github.com/colindj1120/Games/pkg/physics"
)

func main() {
	logger := logging.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithCorrelationID(ctx, "")

	configPath := flag.String("config", "arena.yaml", "Path to scenario file")
	createDefault := flag.Bool("default", false, "Write the default scenario file and exit")
	flag.Parse()

	if *createDefault {
		if err := config.Save(config.Default(), *configPath); err != nil {
			logger.Error(ctx, "Failed to write default scenario", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Wrote default scenario", "config_path", *configPath)
		return
	}

	var cfg *config.Config
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Scenario file not found, using default scenario", "config_path", *configPath)
		cfg = config.Default()
	} else {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load scenario", err, "config_path", *configPath)
			os.Exit(1)
		}
	}

	bus := event.NewBus()
	eng := engine.New(cfg, bus, logger)

	bus.Subscribe(event.BallsCollided, func(ev event.Event) {
		col := ev.(*event.CollisionEvent)
		logger.Info(ctx, "balls collided", "ball_a", col.EntityA, "ball_b", col.EntityB, "x", col.X, "y", col.Y)
	})
	bus.Subscribe(event.WallStopped, func(ev event.Event) {
		logger.Info(ctx, "wall finished growing", "wall_id", ev.(*event.WallEvent).WallID)
	})

	if err := seed(eng, cfg); err != nil {
		logger.Error(ctx, "Failed to seed engine", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Starting simulation",
		"balls", len(cfg.Balls),
		"walls", len(cfg.Walls),
		"tick_rate", cfg.Simulation.TickRate,
		"target_time", cfg.Simulation.TargetTime,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return run(ctx, eng, cfg.Simulation.TickRate, logger)
	})
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Simulation finished", "time", eng.CurrentTime())
}

// seed registers the scenario's balls and walls, then wires the wall
// neighbor indices into identifier references.
func seed(eng *engine.Engine, cfg *config.Config) error {
	for _, bc := range cfg.Balls {
		ball := entity.NewBall(physics.Coordinate{X: bc.X, Y: bc.Y}, bc.Speed, bc.Direction, bc.Radius, bc.Mass)
		if err := eng.AddBall(ball); err != nil {
			return logging.WrapError(err, "adding ball at (%g, %g)", bc.X, bc.Y)
		}
	}

	walls := make([]*entity.Wall, len(cfg.Walls))
	for i, wc := range cfg.Walls {
		wall, err := entity.NewWall(
			physics.Coordinate{X: wc.StartX, Y: wc.StartY},
			wc.Size,
			wc.GrowthRate,
			wc.Growing,
			physics.Coordinate{X: wc.Target1X, Y: wc.Target1Y},
			physics.Coordinate{X: wc.Target2X, Y: wc.Target2Y},
		)
		if err != nil {
			return logging.WrapError(err, "constructing wall %d", i)
		}
		if err := eng.AddWall(wall); err != nil {
			return logging.WrapError(err, "adding wall %d", i)
		}
		walls[i] = wall
	}

	for i, wc := range cfg.Walls {
		var end1, end2 uint64
		if wc.End1Into >= 0 {
			end1 = walls[wc.End1Into].ID()
		}
		if wc.End2Into >= 0 {
			end2 = walls[wc.End2Into].ID()
		}
		walls[i].SetNeighbors(end1, end2)
	}
	return nil
}

// run drives the engine at a fixed tick rate until the target time or a
// shutdown signal.
func run(ctx context.Context, eng *engine.Engine, tickRate float64, logger *logging.Logger) error {
	interval := time.Duration(float64(time.Second) / tickRate)
	deltaTime := 1.0 / tickRate

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Shutting down simulation", "time", eng.CurrentTime())
			return nil
		case <-ticker.C:
			eng.Update(ctx, deltaTime)
			if eng.CurrentTime() >= eng.TargetTime() {
				return nil
			}
		}
	}
}
