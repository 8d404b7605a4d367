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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drschille/MessageSearchBE/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// captureConfig runs the app with the given arguments and intercepts
// the config that importAction would have used.
func captureConfig(t *testing.T, args ...string) (*importer.Config, error) {
	t.Helper()

	var cfg *importer.Config
	var cfgErr error

	app := newApp()
	app.Action = func(c *cli.Context) error {
		cfg, cfgErr = buildConfig(c)
		return nil
	}

	require.NoError(t, app.Run(append([]string{"docseed"}, args...)))
	return cfg, cfgErr
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := captureConfig(t)
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.LanguageCode)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, importer.SplitModeBlankLine, cfg.SplitRule)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.False(t, cfg.DryRun)
}

func TestBuildConfig_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := captureConfig(t,
		"--base-url", "http://localhost:8080",
		"--token", "tok",
		"--input", "/tmp/docs",
		"--batch-size", "10",
		"--retries", "1",
		"--split", "delimiter:---",
		"--dry-run",
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "/tmp/docs", cfg.Input)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 1, cfg.Retries)
	assert.Equal(t, "delimiter:---", cfg.SplitRule)
	assert.True(t, cfg.DryRun)
}

func TestBuildConfig_FileProvidesDefaultsFlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: http://file.example:8080\ntoken: file-token\nbatch_size: 25\n"), 0o644))

	cfg, err := captureConfig(t,
		"--config", path,
		"--token", "flag-token",
	)
	require.NoError(t, err)

	assert.Equal(t, "http://file.example:8080", cfg.BaseURL, "file value survives when flag is unset")
	assert.Equal(t, "flag-token", cfg.Token, "explicit flag beats the file")
	assert.Equal(t, 25, cfg.BatchSize)
}

func TestBuildConfig_EnvironmentDefaults(t *testing.T) {
	t.Setenv("MSEARCH_BASE_URL", "http://env.example:8080")
	t.Setenv("MSEARCH_TOKEN", "env-token")

	cfg, err := captureConfig(t)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:8080", cfg.BaseURL)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts known levels case-insensitively", func(t *testing.T) {
		for _, level := range []string{"debug", "Info", "WARN", "eRrOr"} {
			app := newApp()
			app.Action = func(c *cli.Context) error { return nil }

			err := app.Run([]string{"docseed", "--log-level", level})
			require.NoError(t, err, "level %q", level)
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		app := newApp()
		app.Action = func(c *cli.Context) error { return nil }

		err := app.Run([]string{"docseed", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
