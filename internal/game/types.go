// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Feedback: per-letter result of a guess (correct/present/absent).
//   - Status:   lifecycle of a game (in_progress → won | lost).
//   - Attempt:  a committed guess plus its feedback.
//   - State:    the full value of one game, threaded through transitions.

package game

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer elsewhere, with multiplicity left over.
//   - "absent":  letter is not in what remains of the answer.
type Feedback string

const (
	FeedbackCorrect Feedback = "correct"
	FeedbackPresent Feedback = "present"
	FeedbackAbsent  Feedback = "absent"
)

// Status is the game's position in its state machine. Won and Lost are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Attempt is one committed guess. Attempts are append-only.
type Attempt struct {
	Word     string     `json:"word"`
	Feedback []Feedback `json:"feedback"`
}

// State holds a single game. Engine transitions take a State and return the
// next one; the argument is never modified, so older values stay valid.
type State struct {
	Target      string    `json:"-"`           // hidden until the game is over
	WordLength  int       `json:"wordLength"`  // letters per word (typically 5)
	MaxAttempts int       `json:"maxAttempts"` // rows on the board (typically 6)
	Attempts    []Attempt `json:"attempts"`
	Pending     string    `json:"pending"` // uncommitted input for the current row
	Status      Status    `json:"status"`
	Message     string    `json:"message"` // advisory notice for the player
}

// Done reports whether the game reached Won or Lost.
func (s State) Done() bool { return s.Status != StatusInProgress }

// Remaining returns how many commits are still available.
func (s State) Remaining() int {
	if s.Done() {
		return 0
	}
	return s.MaxAttempts - len(s.Attempts)
}

// Row is the index of the board row that pending input belongs to.
func (s State) Row() int { return len(s.Attempts) }

// Answer returns the target once the game is over, and "" before that.
func (s State) Answer() string {
	if !s.Done() {
		return ""
	}
	return s.Target
}
