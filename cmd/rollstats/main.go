// Headless batch roller: throws the same dice many times and prints how often
// each face came up.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dicebox/internal/config"
	"dicebox/internal/dice"
	"dicebox/internal/game"
	"dicebox/internal/logging"
	"dicebox/internal/roll"
)

const frameTime = float32(1.0 / 60.0)

func main() {
	configDir := flag.String("config", ".", "directory containing dicebox.json")
	diceList := flag.String("dice", "", "comma separated dice to roll, e.g. d6,d6,d20")
	rolls := flag.Int("n", 100, "number of rolls")
	seed := flag.Int64("seed", 0, "throw seed, 0 for random")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *diceList != "" {
		settings.Dice = *diceList
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	logger := logging.NewConsole(settings.LogLevel, os.Stderr)

	rollCfg, err := settings.RollConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid dice list")
	}

	sim, err := game.NewSimulation(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build simulation")
	}
	defer sim.Session.Close()

	// Frames allowed per roll: every timeout re-drop plus the final forced read.
	settle := settings.SettleConfig()
	timeout := settle.RollTimeout
	if timeout <= 0 {
		timeout = 60
	}
	maxFrames := int(timeout/frameTime)*(settle.MaxRedrops+2) + 1

	stats := newStats()
	start := time.Now()
	for i := 0; i < *rolls; i++ {
		if !sim.Session.StartRoll(rollCfg) {
			logger.Fatal().Int("roll", i).Msg("session refused to start a roll")
		}
		frames := 0
		for sim.Session.State() != roll.StateResolved && frames < maxFrames {
			sim.Session.Update(frameTime)
			frames++
		}
		if sim.Session.State() != roll.StateResolved {
			logger.Error().Int("roll", i).Int("frames", frames).Msg("roll never resolved")
			stats.unresolved++
			sim.Session.Reset()
			continue
		}
		stats.add(sim.Session.Dice(), sim.Session.Results(), sim.Session.Forced(), frames)
	}

	fmt.Printf("seed %d, %d rolls of %s in %v\n\n", sim.Factory.Seed(), *rolls,
		dice.FormatDiceList(rollCfg.Normalize().Dice), time.Since(start).Round(time.Millisecond))
	stats.print()
}

type stats struct {
	counts      map[dice.DieType][]int
	forced      int
	degraded    int
	unresolved  int
	totalFrames int
	resolved    int
}

func newStats() *stats {
	return &stats{counts: make(map[dice.DieType][]int)}
}

func (s *stats) add(dies []*roll.Die, outcomes []roll.Outcome, forced bool, frames int) {
	s.resolved++
	s.totalFrames += frames
	if forced {
		s.forced++
	}
	for _, d := range dies {
		if d.Degraded {
			s.degraded++
		}
	}
	for _, o := range outcomes {
		c, ok := s.counts[o.DieType]
		if !ok {
			c = make([]int, o.DieType.Faces()+1)
			s.counts[o.DieType] = c
		}
		if int(o.Value) < len(c) {
			c[o.Value]++
		}
	}
}

func (s *stats) print() {
	for _, t := range dice.AllDieTypes() {
		c, ok := s.counts[t]
		if !ok {
			continue
		}
		total := 0
		for _, n := range c {
			total += n
		}
		fmt.Printf("%s (%d throws)\n", t.Name(), total)
		for v := 1; v < len(c); v++ {
			pct := 100 * float64(c[v]) / float64(total)
			fmt.Printf("  %2d %6d %5.1f%% %s\n", v, c[v], pct, strings.Repeat("#", int(pct/2)))
		}
		if c[0] > 0 {
			fmt.Printf("  unread %d\n", c[0])
		}
		fmt.Println()
	}

	avg := 0.0
	if s.resolved > 0 {
		avg = float64(s.totalFrames) / float64(s.resolved) * float64(frameTime)
	}
	fmt.Printf("forced %d | unresolved %d | degraded dice %d | avg settle %.2fs\n",
		s.forced, s.unresolved, s.degraded, avg)
}
