// internal/game/evaluate.go
//
// GuessEvaluator: per-letter feedback for a guess against a target.
// Responsibilities:
//   - Validate both words (same letter count, ASCII A–Z only).
//   - Score with the two-pass algorithm so repeated letters are never
//     credited more often than the target contains them.
//
// Notes:
//   - Pure and deterministic; the engine and the HTTP adapter both call it.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidLength is returned when guess and target differ in letter count or are empty.
	ErrInvalidLength = errors.New("guess and target lengths differ")
	// ErrInvalidLetters is returned when either word holds something other than A–Z.
	ErrInvalidLetters = errors.New("words must contain only letters A-Z")
)

// Evaluate scores guess against target with the standard two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (unmatched) target letters.
//
// Pass 2:
//   - For each non-correct guess letter: if the count for that letter is
//     positive, mark Present and consume one; otherwise mark Absent.
//
// Consuming counts is what keeps repeated letters honest: a guess never gets
// more Correct+Present marks for a letter than the target contains.
// Comparison is case-insensitive.
func Evaluate(guess, target string) ([]Feedback, error) {
	guess, target = strings.ToUpper(guess), strings.ToUpper(target)
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(target) || guess == "" {
		return nil, ErrInvalidLength
	}
	if !isUpperASCII(guess) || !isUpperASCII(target) {
		return nil, ErrInvalidLetters
	}

	n := len(guess)
	res := make([]Feedback, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = FeedbackCorrect
		} else {
			counts[target[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == FeedbackCorrect {
			continue
		}
		if c := guess[i] - 'A'; counts[c] > 0 {
			res[i] = FeedbackPresent
			counts[c]--
		} else {
			res[i] = FeedbackAbsent
		}
	}
	return res, nil
}

// Solved returns true if every mark is Correct.
func Solved(fb []Feedback) bool {
	if len(fb) == 0 {
		return false
	}
	for _, f := range fb {
		if f != FeedbackCorrect {
			return false
		}
	}
	return true
}

// isUpperASCII reports whether s is all upper-case ASCII letters.
func isUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
