// Command jestr is a terminal browser for JokeAPI jokes.
package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/infrastructure/bookmark"
	"github.com/tesso57/jestr/internal/infrastructure/config"
	"github.com/tesso57/jestr/internal/infrastructure/jokeapi"
	"github.com/tesso57/jestr/internal/infrastructure/logging"
	"github.com/tesso57/jestr/internal/presentation/tui"
)

type cli struct {
	Config   string `help:"Config file path." type:"path" placeholder:"PATH"`
	Category string `help:"Open this joke category (or a jokes/{category} path) on start." placeholder:"NAME"`
	LogLevel string `help:"Log level (debug/info/warn/error). Overrides log_level." placeholder:"LEVEL"`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("jestr"),
		kong.Description("Browse jokes from JokeAPI in the terminal."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(args))
}

func run(args cli) error {
	store, err := config.Load(args.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if category := strings.TrimSpace(args.Category); category != "" {
		cfg.StartCategory = category
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}

	logger, logCloser, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	bookmarks, err := bookmark.Open(cfg.BookmarksFile)
	if err != nil {
		return fmt.Errorf("open bookmarks: %w", err)
	}
	defer func() {
		if err := bookmarks.Close(); err != nil {
			logger.Warn("close bookmarks", slog.Any("error", err))
		}
	}()

	client := jokeapi.New(cfg.API.BaseURL,
		jokeapi.WithTimeout(cfg.API.Timeout()),
		jokeapi.WithUserAgent(cfg.API.UserAgent),
	)
	bookmarkSvc := usecase.NewBookmarkService(bookmarks, time.Now)
	jokeSvc := usecase.NewJokeService(client, bookmarkSvc, logger)

	logger.Info("starting",
		slog.String("config", store.Path()),
		slog.String("api", cfg.API.BaseURL),
		slog.String("start_category", cfg.StartCategory),
	)

	p := tea.NewProgram(tui.NewModel(cfg, jokeSvc, bookmarkSvc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
