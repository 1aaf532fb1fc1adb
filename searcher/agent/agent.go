// Package agent builds players from configuration strings. A config is the
// module name, optionally followed by a colon and a comma-separated list of
// key=value parameters, e.g. "minimax:depth=4,eval=heuristic".
package agent

import (
	"context"
	"strings"

	"gamesolver/experiments/metrics"
	"gamesolver/game"
	"gamesolver/meta"

	"github.com/pkg/errors"
)

type Agent interface {
	// FindAction returns the action to play in state and the metrics of the search behind it (if collected)
	FindAction(ctx context.Context, state game.State) (game.Action, metrics.SearchMetric, error)
}

// Module constructs an agent from its parsed parameters. It must consume
// (PopParamOr) every parameter it understands; leftovers are rejected.
type Module func(params map[string]string) (Agent, error)

var modules = map[string]Module{
	"minimax": newMinimaxAgent,
	"first":   newFirstAgent,
}

// Register makes a module available to New under name.
func Register(name string, module Module) {
	modules[name] = module
}

// New creates an agent from config, meta.AGENT_CONFIG if empty.
func New(config string) (Agent, error) {
	if config == "" {
		config = meta.AGENT_CONFIG
	}

	name := config
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		config = config[split+1:]
	} else {
		config = ""
	}
	module, ok := modules[name]
	if !ok {
		return nil, errors.Errorf("unknown agent %q", name)
	}

	params := splitConfigString(config)
	agent, err := module(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", name)
	}
	if len(params) > 0 {
		return nil, errors.Errorf("unknown parameters for agent %q: %v", name, keys(params))
	}
	return agent, nil
}

func keys(params map[string]string) []string {
	names := make([]string, 0, len(params))
	for key := range params {
		names = append(names, key)
	}
	return names
}

// firstAgent plays the first legal action, a deterministic baseline.
type firstAgent struct{}

func newFirstAgent(map[string]string) (Agent, error) {
	return firstAgent{}, nil
}

func (firstAgent) FindAction(ctx context.Context, state game.State) (game.Action, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}, errors.New("no legal actions")
	}
	return actions[0], metrics.SearchMetric{}, nil
}
