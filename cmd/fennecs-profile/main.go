// Profiling:
// go build ./cmd/fennecs-profile
// ./fennecs-profile -mode cpu -out .
// go tool pprof -http=":8000" ./fennecs-profile cpu.pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/TheBitDrifter/fennecs"
	"github.com/TheBitDrifter/table"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type health struct {
	Current, Max int32
}

type label struct {
	Text string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "world config file (toml or yaml)")
	mode := flag.String("mode", "cpu", "profile mode: cpu, mem, allocs or none")
	out := flag.String("out", ".", "directory for profile output")
	entities := flag.Int("entities", 100000, "entities to create")
	iters := flag.Int("iters", 1000, "query passes")
	flag.Parse()

	cfg := fennecs.DefaultConfig()
	if *configPath != "" {
		loaded, err := fennecs.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := cfg.Logging.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath(*out), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath(*out), profile.NoShutdownHook, profile.Quiet)
	case "allocs":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*out), profile.NoShutdownHook, profile.Quiet)
	case "none":
	default:
		return fmt.Errorf("unknown profile mode %q", *mode)
	}

	start := time.Now()
	stats := exercise(fennecs.Factory.NewWorldWithConfig(table.Factory.NewSchema(), cfg, log), *entities, *iters)
	if p != nil {
		p.Stop()
	}

	log.Info("profile run finished",
		zap.String("mode", *mode),
		zap.Int("entities", *entities),
		zap.Int("iters", *iters),
		zap.Int("arrays", stats.arrays),
		zap.Int("visited", stats.visited),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

type runStats struct {
	arrays  int
	visited int
}

// exercise builds entities through every structural path, then iterates them.
func exercise(world *fennecs.World, n, iters int) runStats {
	pos := fennecs.FactoryNewComponent[position]()
	vel := fennecs.FactoryNewComponent[velocity]()
	hp := fennecs.FactoryNewComponent[health]()
	lbl := fennecs.FactoryNewComponent[label]()

	for i := range n {
		h := world.AddEntity()
		h = world.AttachWithValue(h, pos, position{X: float64(i)})
		if i%2 == 0 {
			h = world.AttachWithValue(h, vel, velocity{X: 1, Y: 1})
		}
		if i%3 == 0 {
			h = world.AttachWithValue(h, hp, health{Current: 10, Max: 10})
		}
		if i%5 == 0 {
			h = world.AttachWithValue(h, lbl, label{Text: fmt.Sprintf("e%d", i)})
			world.Detach(h, hp)
		}
	}

	var stats runStats
	for range iters {
		stream := world.Query(pos, vel)
		for h := stream.Next(); !h.IsNull(); h = stream.Next() {
			p := pos.GetFromHandle(h)
			v := vel.GetFromHandle(h)
			p.X += v.X
			p.Y += v.Y
			stats.visited++
		}
	}

	for h := range world.Query(lbl).All() {
		world.EnqueueRemoveEntity(h)
	}
	stats.arrays = world.ArrayCount()
	return stats
}
