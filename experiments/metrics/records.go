package metrics

type AgentConfig struct {
	ID     int
	Config string // agent.New config string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Max
	Agent2 int // AgentConfig.ID playing Min
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
