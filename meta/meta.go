// meta/meta.go
package meta

// DEPTH defines the default search depth for minimax.
const DEPTH = 3

// MAX_TURNS bounds a single game played by the engine.
const MAX_TURNS = 1000

// AGENT_CONFIG defines the agent used when no configuration is given.
const AGENT_CONFIG = "minimax:depth=3"
