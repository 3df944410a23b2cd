package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = FeedbackCorrect
	P = FeedbackPresent
	A = FeedbackAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		guess, target string
		want          []Feedback
	}{
		{"REACT", "REACT", []Feedback{C, C, C, C, C}},
		{"BUILT", "CODES", []Feedback{A, A, A, A, A}},
		{"ABCDE", "BCDEA", []Feedback{P, P, P, P, P}},
		{"ABCDE", "EDCBA", []Feedback{P, P, C, P, P}},
		{"ALLOY", "LOYAL", []Feedback{P, P, P, P, P}},
		{"SPEED", "ABIDE", []Feedback{A, A, P, A, P}},
		{"EERIE", "THERE", []Feedback{P, A, P, A, C}},
		{"LLAMA", "ALPHA", []Feedback{A, C, P, A, C}},
		{"GAMMA", "ALPHA", []Feedback{A, P, A, A, C}},
		{"stack", "STACK", []Feedback{C, C, C, C, C}},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			got, err := Evaluate(tt.guess, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	pairs := [][2]string{
		{"ALLOY", "LOYAL"},
		{"LLLLL", "HELLO"},
		{"EERIE", "THERE"},
		{"QUEUE", "GAMMA"},
		{"AAAAA", "ALPHA"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		fb, err := Evaluate(guess, target)
		require.NoError(t, err)

		hits := map[byte]int{}
		for i, f := range fb {
			if f != FeedbackAbsent {
				hits[guess[i]]++
			}
		}
		for letter, n := range hits {
			assert.LessOrEqual(t, n, strings.Count(target, string(letter)),
				"%s vs %s: letter %c", guess, target, letter)
		}
	}
}

func TestEvaluateDuplicateLetterCase(t *testing.T) {
	fb, err := Evaluate("ALLOY", "LOYAL")
	require.NoError(t, err)

	marked := 0
	for i, f := range fb {
		if "ALLOY"[i] == 'L' && f != FeedbackAbsent {
			marked++
		}
	}
	assert.LessOrEqual(t, marked, 2)
}

func TestEvaluateIsPure(t *testing.T) {
	first, err := Evaluate("GAMMA", "ALPHA")
	require.NoError(t, err)
	second, err := Evaluate("GAMMA", "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluateInvalidLength(t *testing.T) {
	for _, p := range [][2]string{{"ABCD", "ABCDE"}, {"ABCDEF", "ABCDE"}, {"", ""}, {"ÀBCD", "ABCDE"}, {"ABCDE", "ÀBCD"}} {
		_, err := Evaluate(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidLength, "%q vs %q", p[0], p[1])
	}
}

func TestEvaluateInvalidLetters(t *testing.T) {
	for _, p := range [][2]string{{"ÀBCDE", "ABCDE"}, {"AB1DE", "ABCDE"}, {"ABCDE", "AB DE"}, {"ABCDE", "ABCDÉ"}} {
		_, err := Evaluate(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidLetters, "%q vs %q", p[0], p[1])
	}
}

func TestEvaluateSelfIsAllCorrect(t *testing.T) {
	for _, w := range defaultList {
		fb, err := Evaluate(w, w)
		require.NoError(t, err)
		assert.True(t, Solved(fb), w)
		assert.Len(t, fb, len(w))
	}
}

func TestEvaluateDisjointIsAllAbsent(t *testing.T) {
	pairs := [][2]string{
		{"BUILT", "CODES"},
		{"QUEUE", "GAMMA"},
		{"STACK", "QUEUE"},
		{"LOGIC", "STAMP"},
		{"DELTA", "QUICK"},
		{"FJORD", "MAXIM"},
	}
	for _, p := range pairs {
		fb, err := Evaluate(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, []Feedback{A, A, A, A, A}, fb, "%s vs %s", p[0], p[1])
	}
}

func TestSolved(t *testing.T) {
	assert.True(t, Solved([]Feedback{C, C, C, C, C}))
	assert.False(t, Solved([]Feedback{C, C, P, C, C}))
	assert.False(t, Solved(nil))
}
