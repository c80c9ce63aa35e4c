package opt

import (
	"flag"
	"fmt"
	"log"

	"github.com/nelhage/gomokutician/ai"
)

const (
	StrategyCascade = "cascade"
	StrategyMinimax = "minimax"
)

// Engine holds the flags shared by every command that builds a move
// chooser.
type Engine struct {
	Strategy string
	Debug    int
	Depth    int
	Width    int
	Weights  string
}

func (o *Engine) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Strategy, "strategy", StrategyCascade, "move chooser: cascade or minimax")
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.IntVar(&o.Depth, "depth", ai.DefaultDepth, "minimax depth")
	flags.IntVar(&o.Width, "width", ai.DefaultWidth, "candidates searched per minimax node")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
}

func (o *Engine) weights() *ai.Weights {
	w, err := ai.ParseWeights(o.Weights)
	if err != nil {
		log.Fatalf("-weights: %v", err)
	}
	return &w
}

func (o *Engine) BuildConfig() ai.MinimaxConfig {
	return ai.MinimaxConfig{
		Depth:   o.Depth,
		Width:   o.Width,
		Debug:   o.Debug,
		Weights: o.weights(),
	}
}

// Validate reports a flag combination that cannot build a player.
func (o *Engine) Validate() error {
	switch o.Strategy {
	case StrategyCascade, StrategyMinimax:
	default:
		return fmt.Errorf("-strategy: unknown strategy %q", o.Strategy)
	}
	if o.Depth < 0 || o.Width < 0 {
		return fmt.Errorf("-depth and -width must not be negative")
	}
	if _, err := ai.ParseWeights(o.Weights); err != nil {
		return err
	}
	return nil
}

// Player builds a fresh move chooser. The board size is accepted so
// that Player can serve as a protocol.Engine PlayerFactory.
func (o *Engine) Player(size int) ai.GomokuPlayer {
	if o.Strategy == StrategyMinimax {
		return ai.NewMinimax(o.BuildConfig())
	}
	return ai.NewStrategy(ai.StrategyConfig{
		Debug:   o.Debug,
		Weights: o.weights(),
	})
}
