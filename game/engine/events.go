package engine

// EventType names a notification kind.
type EventType string

const (
	EventPhaseChanged   EventType = "phase_changed"
	EventBoardChanged   EventType = "board_changed"
	EventPlayerChanged  EventType = "player_info_changed"
	EventMergerChoice   EventType = "merger_choice_requested"
	EventDisposalChoice EventType = "disposal_choice_requested"
	EventEndGameOffered EventType = "end_game_offered"
	EventGameOver       EventType = "game_over"
)

// Event is one notification emitted by the engine for presentation layers.
// Fields beyond Type are filled only where they apply.
type Event struct {
	Type    EventType `json:"type"`
	Phase   Phase     `json:"phase,omitempty"`
	Player  string    `json:"player,omitempty"`
	Hotel   string    `json:"hotel,omitempty"`
	Options []string  `json:"options,omitempty"`
}

func (g *GameEngine) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *GameEngine) emitPhase() {
	g.emit(Event{Type: EventPhaseChanged, Phase: g.phase, Player: g.players[g.turn].Name})
}

// TakeEvents drains and returns the notification queue in emission order.
func (g *GameEngine) TakeEvents() []Event {
	events := g.events
	g.events = nil
	return events
}
