package corpus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
	"golang.org/x/sync/errgroup"
)

// Bundle is everything the assistant needs from the data directory, built
// once at startup and read-only afterwards.
type Bundle struct {
	Pipeline  *textproc.Pipeline
	Lemmas    *textproc.DictionaryLemmatizer
	Catalog   *domain.Catalog
	Intents   *domain.IntentCorpus
	Dialogues domain.DialogueIndex
	Lexicon   map[string]float64
}

type rawSources struct {
	lemmas     map[string]string
	vocabulary []string
	lexicon    map[string]float64
	menu       []keyedMenuRecord
	intents    *intentFile
	dialogues  string
}

// LoadAll reads and builds every corpus from fsys. Files are read and
// parsed concurrently; normalization starts once the lemma table and the
// vocabulary are available because every other corpus is normalized with
// them. Lemma table, vocabulary, lexicon and dialogues are optional;
// menu.json and intents.json are required.
func LoadAll(ctx context.Context, fsys fs.FS) (*Bundle, error) {
	var raw rawSources

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, ok, err := readOptional(ctx, fsys, LemmasFile)
		if err != nil || !ok {
			return err
		}
		table, err := textproc.ReadLemmaTable(bytes.NewReader(data))
		if err != nil {
			return &LoadError{Source: LemmasFile, Code: ErrCodeMalformed, Message: "reading lemma table", Err: err}
		}
		raw.lemmas = table
		return nil
	})
	g.Go(func() error {
		data, ok, err := readOptional(ctx, fsys, VocabularyFile)
		if err != nil || !ok {
			return err
		}
		raw.vocabulary = strings.Fields(string(data))
		return nil
	})
	g.Go(func() error {
		data, ok, err := readOptional(ctx, fsys, EmotionsFile)
		if err != nil || !ok {
			return err
		}
		lexicon, err := ReadLexicon(bytes.NewReader(data))
		if err != nil {
			return err
		}
		raw.lexicon = lexicon
		return nil
	})
	g.Go(func() error {
		data, err := readRequired(ctx, fsys, MenuFile)
		if err != nil {
			return err
		}
		records, err := parseMenu(data)
		if err != nil {
			return err
		}
		raw.menu = records
		return nil
	})
	g.Go(func() error {
		data, err := readRequired(ctx, fsys, IntentsFile)
		if err != nil {
			return err
		}
		f, err := parseIntents(data)
		if err != nil {
			return err
		}
		raw.intents = f
		return nil
	})
	g.Go(func() error {
		data, ok, err := readOptional(ctx, fsys, DialoguesFile)
		if err != nil || !ok {
			return err
		}
		raw.dialogues = string(data)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return build(raw)
}

func build(raw rawSources) (*Bundle, error) {
	lemmas := textproc.NewDictionaryLemmatizer(raw.lemmas)
	var corrector textproc.Corrector
	if len(raw.vocabulary) > 0 {
		corrector = textproc.NewVocabularyCorrector(raw.vocabulary)
	}
	pipeline := textproc.NewPipeline(corrector, lemmas)

	catalog, err := buildCatalog(raw.menu, pipeline)
	if err != nil {
		return nil, err
	}
	intents, err := buildIntentCorpus(raw.intents, catalog.Keys(), pipeline)
	if err != nil {
		return nil, err
	}

	lexicon := raw.lexicon
	if lexicon == nil {
		lexicon = map[string]float64{}
	}
	return &Bundle{
		Pipeline:  pipeline,
		Lemmas:    lemmas,
		Catalog:   catalog,
		Intents:   intents,
		Dialogues: BuildDialogueIndex(raw.dialogues, pipeline),
		Lexicon:   lexicon,
	}, nil
}

func readRequired(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	data, ok, err := readOptional(ctx, fsys, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &LoadError{Source: name, Code: ErrCodeMissingSource, Message: "file not found"}
	}
	return data, nil
}

func readOptional(ctx context.Context, fsys fs.FS, name string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &LoadError{Source: name, Code: ErrCodeMissingSource, Message: fmt.Sprintf("reading %s", name), Err: err}
	}
	return data, true, nil
}
