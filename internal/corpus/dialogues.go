package corpus

import (
	"sort"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
)

const dialogueMarker = "- "

// BuildDialogueIndex parses a dialogue corpus and indexes it by word.
//
// The corpus is a sequence of blocks separated by a blank line; the first
// two lines of a block are "- question" and "- answer", anything after is
// ignored. Questions are normalized; blocks with an empty or already seen
// normalized question are dropped. Each question is listed under every
// distinct word it contains, each word's list is sorted by question length
// (stable) and cut to domain.MaxPairsPerWord.
func BuildDialogueIndex(content string, p *textproc.Pipeline) domain.DialogueIndex {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	seen := make(map[string]struct{})
	var pairs []domain.DialoguePair
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			continue
		}
		question := p.Normalize(strings.TrimPrefix(lines[0], dialogueMarker))
		answer := strings.TrimPrefix(lines[1], dialogueMarker)
		if question == "" {
			continue
		}
		if _, dup := seen[question]; dup {
			continue
		}
		seen[question] = struct{}{}
		pairs = append(pairs, domain.DialoguePair{Question: question, Answer: answer})
	}

	index := make(domain.DialogueIndex)
	for _, pair := range pairs {
		for _, w := range textproc.UniqueWords(pair.Question) {
			index[w] = append(index[w], pair)
		}
	}
	for w, list := range index {
		sort.SliceStable(list, func(i, j int) bool {
			return textproc.RuneLen(list[i].Question) < textproc.RuneLen(list[j].Question)
		})
		if len(list) > domain.MaxPairsPerWord {
			list = list[:domain.MaxPairsPerWord]
		}
		index[w] = list
	}
	return index
}
