// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/drschille/MessageSearchBE/importer"
	"github.com/urfave/cli/v2"
)

// Exit statuses: 0 for a clean run (including dry runs), 1 when the
// service rejected at least one document, 2 when a fatal error aborted
// the run.
const (
	exitFailedDocs = 1
	exitFatal      = 2
)

func main() {
	// Errors carrying an exit code are handled inside Run; anything
	// else (flag parsing, logger setup) is fatal too, and must not be
	// confused with exit status 1, which is reserved for rejected
	// documents.
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFatal)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "docseed",
		Usage:  "Batch import documents into MessageSearch",
		Before: setupLogger,
		Action: importAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Base URL for the API, e.g. http://localhost:8080",
				EnvVars: []string{"MSEARCH_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "JWT bearer token",
				EnvVars: []string{"MSEARCH_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Directory of .txt/.md files or a JSON file",
			},
			&cli.StringFlag{
				Name:  "language-code",
				Usage: "Language code for documents",
				Value: "en-US",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Documents per batch request",
				Value: 50,
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "Retries for transient errors",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Force input format (dir or json)",
			},
			&cli.StringFlag{
				Name:  "split",
				Usage: "Paragraph split rule: blankline or delimiter:<TEXT> (example: delimiter:---)",
				Value: importer.SplitModeBlankLine,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print payload counts without sending",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Optional YAML file with default run parameters",
			},
		},
	}
}

func importAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	client := importer.NewClient(cfg.BaseURL, cfg.Token, cfg.Retries, cfg.RetryDelay)
	imp := importer.NewImporter(cfg, client, os.Stdout)

	totals, err := imp.Run(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	if totals.Failed > 0 {
		return cli.Exit("", exitFailedDocs)
	}
	return nil
}

// buildConfig layers the run parameters: flag and environment values
// override the optional config file, which overrides the defaults.
func buildConfig(c *cli.Context) (*importer.Config, error) {
	cfg := importer.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := importer.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("base-url") || cfg.BaseURL == "" {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("token") || cfg.Token == "" {
		cfg.Token = c.String("token")
	}
	if c.IsSet("input") || cfg.Input == "" {
		cfg.Input = c.String("input")
	}
	if c.IsSet("language-code") {
		cfg.LanguageCode = c.String("language-code")
	}
	if c.IsSet("batch-size") {
		cfg.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("retries") {
		cfg.Retries = c.Int("retries")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("split") {
		cfg.SplitRule = c.String("split")
	}
	cfg.DryRun = c.Bool("dry-run")
	return cfg, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
