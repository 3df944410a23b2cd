// internal/words/words.go
//
// Word candidate set for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in the assets package.
//   - Reject malformed entries up front; a bad word is a configuration fault,
//     never something discovered mid-game.
//   - Expose the two roles over one vocabulary: Answers (target pool) and
//     Allowed (accepted guesses, always a superset of Answers).
//
// Word Lists:
//   - "answers": canonical solutions, order preserved, duplicates collapsed.
//   - "allowed": valid guesses (always includes answers).
//
// Load behaviour:
//   1. answersPath and allowedPath both set: answers from the first,
//      extra guesses from the second.
//   2. Only answersPath set: answers are the only accepted guesses.
//   3. Only allowedPath set: that file serves both roles.
//   4. Neither set: embedded assets/answers.txt and assets/allowed.txt.
//
// A List is immutable once built and safe for concurrent readers.

package words

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordle/assets"
)

var (
	// ErrMalformed is returned for an entry that is not exactly WordLength ASCII letters.
	ErrMalformed = errors.New("malformed word")
	// ErrEmptyAnswers is returned when no answer words were loaded.
	ErrEmptyAnswers = errors.New("answers list is empty")
)

// List is the fixed vocabulary the target is drawn from and guesses are checked against.
type List struct {
	length     int
	answers    []string            // target pool, ordered
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ extra guesses
}

// New builds a List from in-memory words. extra may be nil.
// Every word must be exactly wordLength letters; words are upper-cased.
func New(wordLength int, answers, extra []string) (*List, error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", wordLength)
	}
	l := &List{
		length:     wordLength,
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(extra)),
	}
	for _, w := range answers {
		w, err := l.normalize(w)
		if err != nil {
			return nil, fmt.Errorf("words: answers: %w", err)
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range extra {
		w, err := l.normalize(w)
		if err != nil {
			return nil, fmt.Errorf("words: allowed: %w", err)
		}
		l.allowedSet[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, fmt.Errorf("words: %w", ErrEmptyAnswers)
	}
	return l, nil
}

// Load reads the word lists from the given files, or the embedded defaults
// when both paths are empty.
func Load(wordLength int, answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}
	return New(wordLength, ansList, allowList)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	out, err := assets.ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

func (l *List) normalize(w string) (string, error) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) != l.length || !isAlpha(w) {
		return "", fmt.Errorf("%q: %w", w, ErrMalformed)
	}
	return w, nil
}

// isAlpha reports whether s is all upper-case ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// WordLength is the number of letters every word in the list has.
func (l *List) WordLength() int { return l.length }

// Len returns the size of the answers role.
func (l *List) Len() int { return len(l.answers) }

// At returns the i-th answer word.
func (l *List) At(i int) string { return l.answers[i] }

// Answers returns a copy of the target pool in load order.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// IsAllowed reports whether w is an accepted guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(w)]
	return ok
}

// IsAnswer reports whether w is in the target pool.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToUpper(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
