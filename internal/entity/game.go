package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDrawn   Status = "drawn"
)

// State - result of a move. Winner is set only when Status is StatusWon.
type State struct {
	Status Status  `json:"status"`
	Winner *Player `json:"winner,omitempty"`
}

func (that State) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that State) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that State) IsDraw() bool {
	return that.Status == StatusDrawn
}

func (that State) IsWon() bool {
	return that.Status == StatusWon
}
