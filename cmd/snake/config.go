package main

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/parameter"
)

// config holds the command-line overrides of the compiled tunables
type config struct {
	width, height int
	move, food    time.Duration
	restart       time.Duration
	seed          uint64
	mute          bool
	debug         bool
	color         bool
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.IntVar(&cfg.width, "width", parameter.ArenaWidth, "Arena width in cells")
	fs.IntVar(&cfg.height, "height", parameter.ArenaHeight, "Arena height in cells")
	fs.DurationVar(&cfg.move, "move", parameter.MovementInterval, "Movement step interval")
	fs.DurationVar(&cfg.food, "food", parameter.FoodSpawnInterval, "Food spawn interval")
	fs.DurationVar(&cfg.restart, "restart", parameter.RestartDelay, "Delay before a new episode after game over")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Food placement seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.mute, "mute", false, "Disable sound cues")
	fs.BoolVar(&cfg.debug, "debug", false, "Write debug log to "+parameter.LogDir+"/"+parameter.LogFileName)
	fs.BoolVar(&cfg.color, "color", true, "Use RGB colors")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.width <= 0 || c.height <= 0 {
		return errors.Errorf("arena must be positive, got %dx%d", c.width, c.height)
	}
	if c.restart < 0 {
		return errors.Errorf("restart delay must not be negative, got %v", c.restart)
	}
	return errors.Wrap(c.intervals().Validate(), "intervals")
}

func (c config) intervals() engine.Intervals {
	return engine.Intervals{
		Movement:   c.move,
		Food:       c.food,
		MaxCatchUp: parameter.MaxCatchUpSteps,
	}
}

func (c config) resolveSeed(now time.Time) uint64 {
	if c.seed != 0 {
		return c.seed
	}
	return uint64(now.UnixNano())
}
