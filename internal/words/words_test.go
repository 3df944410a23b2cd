package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	l, err := Load(5, "", "")
	require.NoError(t, err)

	assert.Equal(t, 5, l.WordLength())
	assert.Equal(t, []string{"REACT", "CODES", "LOGIC", "GAMMA", "DELTA", "ALPHA", "BREAK", "STACK", "QUEUE"}, l.Answers())
	assert.True(t, l.IsAnswer("queue"))
	assert.True(t, l.IsAllowed("Stack"))
	assert.False(t, l.IsAllowed("CRANE"))
}

func TestNewKeepsRolesSeparate(t *testing.T) {
	l, err := New(5, []string{"crane", "slate"}, []string{"adieu"})
	require.NoError(t, err)

	assert.True(t, l.IsAnswer("CRANE"))
	assert.False(t, l.IsAnswer("ADIEU"))
	assert.True(t, l.IsAllowed("ADIEU"))

	a, g := l.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)
}

func TestNewCollapsesDuplicateAnswers(t *testing.T) {
	l, err := New(5, []string{"CRANE", "crane", "SLATE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "CRANE", l.At(0))
	assert.Equal(t, "SLATE", l.At(1))
}

func TestNewRejectsMalformedWords(t *testing.T) {
	cases := map[string][]string{
		"too short":  {"CRAN"},
		"too long":   {"CRANES"},
		"non-letter": {"CR4NE"},
		"non-ascii":  {"CRÄNE"},
	}
	for name, ans := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(5, ans, nil)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}

	_, err := New(5, []string{"CRANE"}, []string{"NOPE"})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	_, err := New(5, nil, []string{"CRANE"})
	assert.ErrorIs(t, err, ErrEmptyAnswers)
}

func TestAnswersReturnsCopy(t *testing.T) {
	l, err := New(5, []string{"CRANE"}, nil)
	require.NoError(t, err)
	got := l.Answers()
	got[0] = "XXXXX"
	assert.Equal(t, "CRANE", l.At(0))
}

func TestLoadFromFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "# answers\ncrane\n\nslate\n")
	allowed := writeList(t, "allowed.txt", "adieu\n")

	t.Run("both", func(t *testing.T) {
		l, err := Load(5, ans, allowed)
		require.NoError(t, err)
		assert.Equal(t, []string{"CRANE", "SLATE"}, l.Answers())
		assert.True(t, l.IsAllowed("ADIEU"))
	})

	t.Run("allowed only serves both roles", func(t *testing.T) {
		l, err := Load(5, "", allowed)
		require.NoError(t, err)
		assert.True(t, l.IsAnswer("ADIEU"))
	})

	t.Run("answers only", func(t *testing.T) {
		l, err := Load(5, ans, "")
		require.NoError(t, err)
		assert.False(t, l.IsAllowed("ADIEU"))
	})

	t.Run("malformed file", func(t *testing.T) {
		bad := writeList(t, "bad.txt", "crane\ncranes\n")
		_, err := Load(5, bad, "")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(5, filepath.Join(t.TempDir(), "nope.txt"), "")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
