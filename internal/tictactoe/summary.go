package tictactoe

import "github.com/rocketscienceinc/jogo-da-velha/internal/entity"

// Summary is the session result: who won more rounds, if anybody.
type Summary struct {
	Score      entity.Score   `json:"score"`
	Players    entity.Players `json:"players"`
	Leader     entity.Marker  `json:"leader,omitempty"`
	LeaderName string         `json:"leader_name,omitempty"`
	Rounds     int            `json:"rounds"`
}

func NewSummary(game entity.Game) Summary {
	summary := Summary{
		Score:   game.Score,
		Players: game.Players,
		Rounds:  playedRounds(game),
	}

	if leader, ok := game.Score.Leader(); ok {
		summary.Leader = leader
		summary.LeaderName = game.Players.Label(leader)
	}

	return summary
}

func (that Summary) IsTie() bool {
	return that.Leader == entity.NoMarker
}

// playedRounds - an untouched last round does not count.
func playedRounds(game entity.Game) int {
	if game.MovesPlayed == 0 && game.Round > 0 {
		return game.Round - 1
	}

	return game.Round
}
