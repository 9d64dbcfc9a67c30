// flockview renders a flock simulation in the terminal. It owns the
// simulation lifecycle, steps it once per frame tick, and hands the output
// buffers to a tcell screen. Update timings are logged on power-of-two frame
// counts; redirect stderr to a file to keep the display clean.
package main

import (
	"flag"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/TheBitDrifter/flock"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

const frameInterval = 33 * time.Millisecond

func main() {
	entities := flag.Int("entities", 200000, "regular entity count")
	hazards := flag.Int("hazards", 20, "hazard count")
	seed := flag.Int64("seed", 0, "population seed, 0 means time-based")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	log := newLogger()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q, want cpu or mem", *profileMode)
	}

	cfg := flock.DefaultConfig()
	cfg.RegularCount = *entities
	cfg.HazardCount = *hazards

	sim, err := flock.Factory.NewSimulation(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create simulation")
	}
	defer sim.Destroy()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	initStart := time.Now()
	if err := sim.Initialize(rng); err != nil {
		log.WithError(err).Fatal("failed to initialize simulation")
	}
	log.WithFields(logrus.Fields{
		"entities": *entities,
		"hazards":  *hazards,
		"init_ms":  time.Since(initStart).Milliseconds(),
	}).Info("simulation initialized")

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("failed to initialize screen")
	}
	defer screen.Fini()

	v := &viewer{
		screen:    screen,
		sim:       sim,
		log:       log,
		positions: make([]flock.Position, *entities+*hazards),
		sprites:   make([]flock.Sprite, *entities+*hazards),
	}
	v.run()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

type viewer struct {
	screen tcell.Screen
	sim    *flock.Simulation
	log    *logrus.Logger

	positions []flock.Position
	sprites   []flock.Sprite

	frames      int
	totalFrames int
	updateTime  time.Duration
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	last := start
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					v.log.WithField("frames", v.totalFrames).Info("shutting down")
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if !v.step(now.Sub(start).Seconds(), dt) {
				return
			}
		}
	}
}

func (v *viewer) step(t float64, dt float32) bool {
	updateStart := time.Now()
	n, err := v.sim.Update(v.positions, v.sprites, t, dt)
	if err != nil {
		v.log.WithError(err).Error("simulation update failed")
		return false
	}
	v.trackTiming(time.Since(updateStart), n)
	v.draw(n)
	return true
}

// trackTiming logs the average update time on power-of-two frame counts, the
// same cadence the original demo driver used to avoid spamming output.
func (v *viewer) trackTiming(elapsed time.Duration, n int) {
	v.updateTime += elapsed
	v.frames++
	v.totalFrames++
	if v.totalFrames&(v.totalFrames-1) == 0 && v.totalFrames > 4 {
		v.log.WithFields(logrus.Fields{
			"frame":         v.totalFrames,
			"entities":      n,
			"avg_update_ms": float64(v.updateTime.Milliseconds()) / float64(v.frames),
		}).Info("update timing")
		v.updateTime = 0
		v.frames = 0
	}
}

func (v *viewer) draw(n int) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w < 1 || h < 1 {
		return
	}

	bounds := v.sim.Config().Bounds
	for i := 0; i < n; i++ {
		pos := v.positions[i]
		spr := v.sprites[i]
		x := int(float32(w-1) * (pos.X - bounds.XMin) / bounds.Width())
		y := int(float32(h-1) * (pos.Y - bounds.YMin) / bounds.Height())

		glyph := '·'
		if spr.Index == flock.HazardSpriteIndex {
			glyph = '◆'
		}
		color := tcell.NewRGBColor(int32(spr.ColorR), int32(spr.ColorG), int32(spr.ColorB))
		v.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(color))
	}
	v.screen.Show()
}
