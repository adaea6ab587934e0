package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/data"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/assistant"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/cart"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/classifier"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/config"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/corpus"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/db"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/llm"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/repository"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Corpora: a directory override or the embedded defaults.
	var corpora fs.FS = data.FS
	if cfg.DataDir != "" {
		corpora = os.DirFS(cfg.DataDir)
	}
	loadStart := time.Now()
	bundle, err := corpus.LoadAll(ctx, corpora)
	if err != nil {
		return fmt.Errorf("loading corpora: %w", err)
	}
	log.Info("corpora loaded",
		zap.Int("dishes", bundle.Catalog.Len()),
		zap.Int("dialogue_words", len(bundle.Dialogues)),
		zap.Duration("took", time.Since(loadStart)))

	// Intent classifier: the trigram model, fronted by an LLM when enabled.
	trained := classifier.Train(bundle.Intents)
	log.Info("classifier trained", zap.Int("labels", len(trained.Labels())))
	var clf classifier.Classifier = trained
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewZapObserver(log)
		}
		client := llm.NewOllamaClient(cfg.LLM, observer)
		clf = classifier.NewLLM(client, clf, bundle.Intents, 3, log)
	}

	opts := assistant.Options{
		ApologyThreshold: &cfg.ApologyThreshold,
		Logger:           log.Named("assistant"),
	}

	app := &cli.App{
		Logger:      log,
		SlowReplies: cfg.LLM.Enabled,
		HistoryPath: cli.DefaultHistoryPath(),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// Order journal.
	if cfg.JournalEnabled() {
		conn, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening order journal: %w", err)
		}
		defer closeDB(conn, log)

		journal := repository.NewJournal(db.NewSQLiteUnitOfWork(conn), repository.NewSQLiteOrderRepo(conn))
		opts.Recorder = journal
		app.Orders = journal
	}

	bot, err := assistant.FromBundle(bundle, clf, thresholds(cfg), assistant.DefaultChooser(), opts)
	if err != nil {
		return fmt.Errorf("building assistant: %w", err)
	}
	app.Bot = bot

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func thresholds(cfg config.Config) assistant.Thresholds {
	return assistant.Thresholds{
		Confirm:          cfg.ConfirmThreshold,
		FallbackLength:   cfg.FallbackLength,
		FallbackDistance: cfg.FallbackDistance,
		Recommendation: cart.Policy{
			MinSentiment: cfg.RecommendMinScore,
			MinCounter:   cfg.RecommendEvery,
		},
	}
}

func closeDB(conn *sql.DB, log *zap.Logger) {
	if err := conn.Close(); err != nil {
		log.Warn("closing order journal", zap.Error(err))
	}
}
