// assets/embed.go
//
// Embedded default word lists, used when no word files are configured.
//   - answers.txt: target pool (one word per line).
//   - allowed.txt: extra accepted guesses; answers are always allowed too.
//
// Blank lines and lines starting with '#' are skipped. Entries are
// upper-cased but otherwise left for the words package to validate.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// ReadWords scans one word per line from r, skipping blanks and comments.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
