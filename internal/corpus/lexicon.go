package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadLexicon parses the emotion lexicon: a semicolon-separated file with a
// header row; column 1 is the term and column 3 its value in [-1,1].
func ReadLexicon(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	lexicon := make(map[string]float64)
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: EmotionsFile, Code: ErrCodeMalformed, Message: "reading lexicon", Err: err}
		}
		if first {
			first = false
			continue
		}
		if len(rec) < 3 {
			line, _ := cr.FieldPos(0)
			return nil, &LoadError{Source: EmotionsFile, Code: ErrCodeMalformed, Message: fmt.Sprintf("line %d: expected at least 3 fields, got %d", line, len(rec))}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			line, _ := cr.FieldPos(2)
			return nil, &LoadError{Source: EmotionsFile, Code: ErrCodeMalformed, Message: fmt.Sprintf("line %d: bad value", line), Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			line, _ := cr.FieldPos(2)
			return nil, &LoadError{Source: EmotionsFile, Code: ErrCodeMalformed, Message: fmt.Sprintf("line %d: value must be a finite number, got %v", line, v)}
		}
		lexicon[strings.TrimSpace(rec[0])] = v
	}
	return lexicon, nil
}
