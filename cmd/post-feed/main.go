// Package main provides the CLI entry point for post-feed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/lepinkainen/post-feed/internal/config"
	"github.com/lepinkainen/post-feed/pkg/feed"
	"github.com/lepinkainen/post-feed/pkg/posts"
	"github.com/lepinkainen/post-feed/pkg/preview"
	"github.com/lepinkainen/post-feed/pkg/site"
)

// CLI structure
var CLI struct {
	Config string `help:"Site configuration file path" default:"_config.yml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Generate struct {
		Source   string `help:"Posts source (.json, .yaml or SQLite .db)" short:"s" required:""`
		OutDir   string `help:"Output directory" short:"o" default:"public"`
		Spec     string `help:"Feed variant: rss or feed (overrides config)"`
		Limit    int    `help:"Maximum number of posts (overrides config)"`
		Encoding string `help:"Output encoding: json or xml (overrides config)"`
	} `cmd:"generate" help:"Generate the feed file from site posts."`

	Import struct {
		Source string `help:"Posts file to import (.json or .yaml)" short:"s" required:""`
		DB     string `help:"SQLite post store path" default:"posts.db"`
	} `cmd:"import" help:"Import a posts file into a SQLite post store."`

	Preview struct {
		Source string `help:"Posts source (.json, .yaml or SQLite .db)" short:"s" required:""`
		Spec   string `help:"Feed variant: rss or feed (overrides config)"`
		Limit  int    `help:"Maximum number of posts (overrides config)"`
		Index  int    `help:"Output the assembled item at this index (0-based) to stdout" default:"-1"`
	} `cmd:"preview" help:"Preview feed items interactively."`
}

func main() {
	// Parse CLI with Kong YAML configuration file loading
	ctx := kong.Parse(&CLI,
		kong.Configuration(kongyaml.Loader, "post-feed.yaml", "~/.post-feed/config.yaml"),
	)

	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	switch ctx.Command() {
	case "generate":
		generateFeed()
	case "import":
		importPosts()
	case "preview":
		previewFeed()
	default:
		panic(ctx.Command())
	}
}

// loadConfig reads the site config and applies the CLI overrides
func loadConfig(spec string, limit int) *config.Config {
	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load config", "path", CLI.Config, "error", err)
		os.Exit(1)
	}

	if spec != "" {
		cfg.JSONFeed.Spec = spec
	}
	if limit > 0 {
		cfg.JSONFeed.Limit = limit
	}
	return cfg
}

// buildFeed loads the posts from source and assembles the configured feed
func buildFeed(cfg *config.Config, source string) *feed.Result {
	feedConfig, err := cfg.FeedConfig()
	if err != nil {
		slog.Error("Invalid feed configuration", "error", err)
		os.Exit(1)
	}

	slog.Debug("Generating feed", "spec", feedConfig.Spec, "limit", feedConfig.Limit, "source", source)

	result, err := feed.NewAssembler().Build(loadPosts(source), feedConfig)
	if err != nil {
		slog.Error("Failed to assemble feed", "error", err)
		os.Exit(1)
	}
	return result
}

// loadPosts materializes all posts from the given source
func loadPosts(path string) []posts.Post {
	source, err := site.Open(path)
	if err != nil {
		slog.Error("Failed to open posts source", "source", path, "error", err)
		os.Exit(1)
	}
	if closer, ok := source.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("Failed to close posts source", "source", path, "error", err)
			}
		}()
	}

	all, err := source.Posts(context.Background())
	if err != nil {
		slog.Error("Failed to load posts", "source", path, "error", err)
		os.Exit(1)
	}
	return all
}

func generateFeed() {
	cfg := loadConfig(CLI.Generate.Spec, CLI.Generate.Limit)
	if CLI.Generate.Encoding != "" {
		cfg.JSONFeed.Encoding = CLI.Generate.Encoding
	}

	encoding, err := cfg.Encoding()
	if err != nil {
		slog.Error("Invalid feed configuration", "error", err)
		os.Exit(1)
	}

	result := buildFeed(cfg, CLI.Generate.Source)

	path, err := feed.SaveToFile(result, encoding, CLI.Generate.OutDir)
	if err != nil {
		slog.Error("Failed to write feed", "error", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

func importPosts() {
	opened, err := site.Open(CLI.Import.Source)
	if err != nil {
		slog.Error("Failed to open posts source", "source", CLI.Import.Source, "error", err)
		os.Exit(1)
	}
	source, ok := opened.(*site.FileSource)
	if !ok {
		slog.Error("Import source must be a JSON or YAML posts file", "source", CLI.Import.Source)
		os.Exit(1)
	}

	ctx := context.Background()
	all, err := source.Posts(ctx)
	if err != nil {
		slog.Error("Failed to load posts", "source", CLI.Import.Source, "error", err)
		os.Exit(1)
	}

	store, err := site.NewStore(CLI.Import.DB)
	if err != nil {
		slog.Error("Failed to open post store", "path", CLI.Import.DB, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SavePosts(ctx, all); err != nil {
		slog.Error("Failed to import posts", "path", CLI.Import.DB, "error", err)
		os.Exit(1)
	}

	if info, err := store.Info(); err == nil {
		slog.Debug("Post store updated", "path", store.Path(), "info", info)
	}

	fmt.Printf("Imported %d posts into %s\n", len(all), store.Path())
}

func previewFeed() {
	cfg := loadConfig(CLI.Preview.Spec, CLI.Preview.Limit)
	result := buildFeed(cfg, CLI.Preview.Source)
	entries := preview.EntriesFromResult(result)

	// If index is specified, output the item directly to stdout
	if CLI.Preview.Index >= 0 {
		if CLI.Preview.Index >= len(entries) {
			slog.Error("Index out of range", "index", CLI.Preview.Index, "total", len(entries))
			os.Exit(1)
		}
		fmt.Print(preview.FormatRawEntry(entries[CLI.Preview.Index]))
		return
	}

	if err := preview.Run(entries, cfg.Title); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}
