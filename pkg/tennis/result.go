package tennis

import "fmt"

// Result is the outcome of a game from the point of view of player 1.
type Result int

const (
	Player1Wins Result = +1
	Ongoing     Result = 0
	Player2Wins Result = -1
)

// WonBy maps the winning player to a Result.
var WonBy = [PlayerN]Result{
	P1: Player1Wins,
	P2: Player2Wins,
}

// ResultOf returns the result a score stands for. Only a Win decides a
// game; every other score is Ongoing.
func ResultOf(score Score) Result {
	if win, ok := score.(Win); ok {
		return WonBy[win.Player&1]
	}

	return Ongoing
}

// Winner returns the player who won, and false for an undecided game.
func (result Result) Winner() (Player, bool) {
	switch result {
	case Player1Wins:
		return P1, true
	case Player2Wins:
		return P2, true
	default:
		return P1, false
	}
}

func (result Result) String() string {
	switch result {
	case Player1Wins:
		return "1-0"
	case Player2Wins:
		return "0-1"
	case Ongoing:
		return "*"
	default:
		return "?-?"
	}
}

// ParseResult is the inverse of Result.String.
func ParseResult(str string) (Result, error) {
	switch str {
	case "1-0":
		return Player1Wins, nil
	case "0-1":
		return Player2Wins, nil
	case "*":
		return Ongoing, nil
	default:
		return Ongoing, fmt.Errorf("parse result: invalid result %q", str)
	}
}
