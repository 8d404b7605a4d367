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


package importer

import (
	"fmt"
	"os"
	"time"

	"github.com/drschille/MessageSearchBE/core"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of one import run. Values typically come
// from CLI flags, with an optional YAML file supplying defaults.
type Config struct {
	// BaseURL is the service base URL, e.g. "http://localhost:8080".
	BaseURL string `yaml:"base_url"`

	// Token is the bearer token presented on every batch call.
	Token string `yaml:"token"`

	// Input is a directory of .txt/.md files or a JSON record file.
	Input string `yaml:"input"`

	// LanguageCode is assigned to documents built from local files.
	LanguageCode string `yaml:"language_code"`

	// BatchSize is the number of documents per batch request.
	BatchSize int `yaml:"batch_size"`

	// Retries is the number of additional attempts for transient
	// transport errors (total attempts = Retries + 1).
	Retries int `yaml:"retries"`

	// Format forces the input format ("dir" or "json"); empty means
	// the input path is inspected.
	Format string `yaml:"format"`

	// SplitRule is the paragraph split rule for the directory
	// strategy: "blankline" or "delimiter:<token>". It is ignored when
	// Format forces the JSON strategy.
	SplitRule string `yaml:"split"`

	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration `yaml:"retry_delay"`

	// DryRun loads and counts documents without sending anything.
	DryRun bool `yaml:"-"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		LanguageCode: "en-US",
		BatchSize:    50,
		Retries:      3,
		SplitRule:    SplitModeBlankLine,
		RetryDelay:   500 * time.Millisecond,
	}
}

// LoadConfig reads defaults from a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open config file: %v", core.ErrConfiguration, err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to parse config file: %v", core.ErrConfiguration, err)
	}
	return cfg, nil
}

// Validate checks the run parameters. It performs no I/O, so every
// configuration error surfaces before the load phase starts. The split
// rule is not checked when the JSON strategy is forced; it is
// meaningless for pass-through records.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", core.ErrConfiguration)
	}
	if c.Token == "" {
		return fmt.Errorf("%w: token is required", core.ErrConfiguration)
	}
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", core.ErrConfiguration)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", core.ErrConfiguration, c.BatchSize)
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: retries must not be negative, got %d", core.ErrConfiguration, c.Retries)
	}
	if c.RetryDelay <= 0 {
		return fmt.Errorf("%w: retry delay must be positive, got %v", core.ErrConfiguration, c.RetryDelay)
	}
	switch c.Format {
	case "", string(FormatDir), string(FormatJSON):
	default:
		return fmt.Errorf("%w: unknown format %q (expected dir or json)", core.ErrConfiguration, c.Format)
	}
	if c.Format != string(FormatJSON) {
		if _, err := ParseSplitRule(c.SplitRule); err != nil {
			return err
		}
	}
	return nil
}
