// internal/game/engine.go
//
// Turn state machine for a single Wordle game.
// Responsibilities:
//   - Start games with a target drawn uniformly from the answers list.
//   - Buffer typed letters for the current row (append / delete).
//   - Validate and commit a row (length, allowed list), score it, record it.
//   - Track state transitions: in_progress → won | lost.
//
// Notes:
//   - Transitions are pure: (State, input) → State. The engine only holds
//     configuration (word list, dimensions, random source).
//   - Player mistakes are never Go errors; they land in State.Message and
//     leave everything else untouched.
//   - Word list integrity is checked in NewEngine, so Evaluate cannot fail
//     during play.

package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/internal/words"
)

const (
	DefaultWordLength  = 5
	DefaultMaxAttempts = 6
)

// Messages surfaced through State.Message.
const (
	MsgNotEnoughLetters = "Not enough letters"
	MsgNotInWordList    = "Not in word list"
	MsgWon              = "You won!"
	msgRevealPrefix     = "The word was "
)

// Key names understood by HandleKey, besides single letters.
const (
	KeyEnter     = "ENTER"
	KeyBackspace = "BACKSPACE"
)

// ErrUnknownTarget is returned by NewGameWithTarget for a word outside the answers list.
var ErrUnknownTarget = errors.New("target is not in the answers list")

// RandSource picks target indexes. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Config holds the board dimensions. Zero values fall back to the defaults.
type Config struct {
	WordLength  int
	MaxAttempts int
}

// Engine starts games and applies inputs to them.
// An Engine may be shared; a State must have a single owner at a time.
type Engine struct {
	words       *words.List
	wordLength  int
	maxAttempts int

	mu  sync.Mutex // guards rng
	rng RandSource
}

// NewEngine validates the word list against cfg and returns an Engine.
// A mismatch is an integrity failure and must stop startup.
func NewEngine(list *words.List, rng RandSource, cfg Config) (*Engine, error) {
	if list == nil {
		return nil, errors.New("game: nil word list")
	}
	if rng == nil {
		return nil, errors.New("game: nil random source")
	}
	if cfg.WordLength == 0 {
		cfg.WordLength = DefaultWordLength
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("game: invalid max attempts %d", cfg.MaxAttempts)
	}
	if list.WordLength() != cfg.WordLength {
		return nil, fmt.Errorf("game: word list has %d-letter words, engine wants %d: %w",
			list.WordLength(), cfg.WordLength, ErrInvalidLength)
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("game: %w", words.ErrEmptyAnswers)
	}
	for _, w := range list.Answers() {
		if _, err := Evaluate(w, w); err != nil || len(w) != cfg.WordLength {
			return nil, fmt.Errorf("game: answer %q: %w", w, ErrInvalidLength)
		}
	}
	return &Engine{
		words:       list,
		wordLength:  cfg.WordLength,
		maxAttempts: cfg.MaxAttempts,
		rng:         rng,
	}, nil
}

// WordLength returns the configured word length.
func (e *Engine) WordLength() int { return e.wordLength }

// MaxAttempts returns the configured number of rows.
func (e *Engine) MaxAttempts() int { return e.maxAttempts }

// Words returns the candidate list the engine was built with.
func (e *Engine) Words() *words.List { return e.words }

// NewGame starts a game with a uniformly random target.
func (e *Engine) NewGame() State {
	e.mu.Lock()
	i := e.rng.IntN(e.words.Len())
	e.mu.Unlock()
	return e.newState(e.words.At(i))
}

// NewGameWithTarget starts a game with a fixed target from the answers list.
func (e *Engine) NewGameWithTarget(target string) (State, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if !e.words.IsAnswer(target) {
		return State{}, fmt.Errorf("game: %q: %w", target, ErrUnknownTarget)
	}
	return e.newState(target), nil
}

func (e *Engine) newState(target string) State {
	return State{
		Target:      target,
		WordLength:  e.wordLength,
		MaxAttempts: e.maxAttempts,
		Attempts:    []Attempt{},
		Status:      StatusInProgress,
	}
}

// AppendLetter adds ch to the pending row. Ignored once the game is over,
// when the row is full, or when ch is not an ASCII letter.
func (e *Engine) AppendLetter(s State, ch rune) State {
	if s.Done() || len(s.Pending) >= e.wordLength || !isLetter(ch) {
		return s
	}
	s.Pending += strings.ToUpper(string(ch))
	return s
}

// DeleteLetter removes the last pending letter, if any.
func (e *Engine) DeleteLetter(s State) State {
	if s.Done() || s.Pending == "" {
		return s
	}
	s.Pending = s.Pending[:len(s.Pending)-1]
	return s
}

// Commit validates the pending row and, if it passes, scores and records it.
//
// Validation order:
//   - Fewer than WordLength letters → MsgNotEnoughLetters.
//   - Not an allowed guess          → MsgNotInWordList.
//
// On success the row is appended, pending input cleared, and the status
// moves to Won on a match or Lost when the State's last row is used up.
func (e *Engine) Commit(s State) State {
	if s.Done() {
		return s
	}
	if len(s.Pending) != e.wordLength {
		s.Message = MsgNotEnoughLetters
		return s
	}
	if !e.words.IsAllowed(s.Pending) {
		s.Message = MsgNotInWordList
		return s
	}

	guess := s.Pending
	fb, err := Evaluate(guess, s.Target)
	if err != nil {
		// Unreachable with a list that passed NewEngine.
		panic(fmt.Sprintf("game: evaluate %q against target: %v", guess, err))
	}

	// Full slice expression forces a copy so the caller's State keeps its history.
	n := len(s.Attempts)
	s.Attempts = append(s.Attempts[:n:n], Attempt{Word: guess, Feedback: fb})
	s.Pending = ""

	switch {
	case guess == s.Target:
		s.Status = StatusWon
		s.Message = MsgWon
	case len(s.Attempts) >= s.MaxAttempts:
		s.Status = StatusLost
		s.Message = msgRevealPrefix + s.Target
	default:
		s.Message = ""
	}
	return s
}

// HandleKey dispatches a keyboard event: "ENTER" commits, "BACKSPACE"
// deletes, a single letter is appended. Anything else is ignored.
func (e *Engine) HandleKey(s State, key string) State {
	k := strings.ToUpper(strings.TrimSpace(key))
	switch k {
	case KeyEnter:
		return e.Commit(s)
	case KeyBackspace:
		return e.DeleteLetter(s)
	}
	if len(k) == 1 {
		return e.AppendLetter(s, rune(k[0]))
	}
	return s
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
