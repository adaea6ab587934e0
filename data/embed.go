// Package data ships the default restaurant corpora so the binary runs
// without an external data directory.
package data

import "embed"

//go:embed menu.json intents.json dialogues.txt emotions.csv lemmas.txt vocabulary.txt
var FS embed.FS
