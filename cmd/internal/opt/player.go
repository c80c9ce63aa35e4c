package opt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/gomokutician/ai"
)

// ParsePlayer builds an AI from a player name: "cascade",
// "minimax[:DEPTH]" or "rand[:SEED]". It returns nil, nil for
// "human".
func ParsePlayer(s string, debug int) (ai.GomokuPlayer, error) {
	name, arg := s, ""
	if i := strings.Index(s, ":"); i >= 0 {
		name, arg = s[:i], s[i+1:]
	}
	switch name {
	case "human":
		return nil, nil
	case StrategyCascade:
		return ai.NewStrategy(ai.StrategyConfig{Debug: debug}), nil
	case "rand":
		var seed int64
		if arg != "" {
			i, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("player %q: %w", s, err)
			}
			seed = i
		}
		return ai.NewRandom(seed), nil
	case StrategyMinimax:
		depth := ai.DefaultDepth
		if arg != "" {
			i, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("player %q: %w", s, err)
			}
			depth = i
		}
		return ai.NewMinimax(ai.MinimaxConfig{
			Depth: depth,
			Debug: debug,
		}), nil
	}
	return nil, fmt.Errorf("unparseable player: %s", s)
}
