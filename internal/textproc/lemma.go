package textproc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DictionaryLemmatizer maps word forms to lemmas using a lookup table.
// Forms missing from the table are their own lemma.
type DictionaryLemmatizer struct {
	lemmas map[string]string
}

// NewDictionaryLemmatizer wraps a form→lemma table. A nil table gives an
// identity lemmatizer.
func NewDictionaryLemmatizer(table map[string]string) *DictionaryLemmatizer {
	if table == nil {
		table = map[string]string{}
	}
	return &DictionaryLemmatizer{lemmas: table}
}

// ReadLemmaTable parses "form lemma" lines. Blank lines and lines starting
// with '#' are skipped; forms and lemmas are cleaned before storing.
func ReadLemmaTable(r io.Reader) (map[string]string, error) {
	table := make(map[string]string)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected \"form lemma\", got %q", line, text)
		}
		table[Clean(parts[0])] = Clean(parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lemma table: %w", err)
	}
	return table, nil
}

func (l *DictionaryLemmatizer) Lemmatize(text string) string {
	fields := strings.Fields(text)
	for i, w := range fields {
		if lemma, ok := l.lemmas[w]; ok {
			fields[i] = lemma
		}
	}
	return strings.Join(fields, " ")
}
