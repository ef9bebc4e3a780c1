package core

// EventKind identifies a discrete game event for the presentation layer.
type EventKind string

const (
	EventCellCleared  EventKind = "cell_cleared"
	EventChainScored  EventKind = "chain_scored"
	EventCollapsed    EventKind = "collapsed"
	EventRowRisen     EventKind = "row_risen"
	EventStageCleared EventKind = "stage_cleared"
	EventGameOver     EventKind = "game_over"
	EventGameCleared  EventKind = "game_cleared"
	EventHighScore    EventKind = "high_score"
)

// Event is emitted by the game during a step. Only the fields relevant to
// Kind are populated.
type Event struct {
	Kind   EventKind
	Cell   Cell      // cell_cleared
	Color  TileColor // cell_cleared, chain_scored
	Count  int       // cell_cleared: particles to spawn; chain_scored: chain length
	Points int       // chain_scored
	Combo  int       // chain_scored
	Stage  int       // stage_cleared, game_over, game_cleared (1-indexed)
	Score  int       // game_over, game_cleared, high_score: total run score
}
