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
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/drschille/MessageSearchBE/core"
)

// BatchSender transmits one batch of documents to the remote service.
type BatchSender interface {
	Send(ctx context.Context, docs []core.ImportDocument) (*core.BatchResult, error)
}

// Importer orchestrates one import run: load, plan batches, send them
// strictly in order, and accumulate the service's verdicts.
type Importer struct {
	config *Config
	sender BatchSender
	out    io.Writer
}

// NewImporter creates an importer for a validated config.
// out: where to write run output (typically os.Stdout)
func NewImporter(config *Config, sender BatchSender, out io.Writer) *Importer {
	return &Importer{
		config: config,
		sender: sender,
		out:    out,
	}
}

// Run executes the import and returns the accumulated totals. A nil
// error does not mean every document was accepted: per-document
// failures reported by the service are counted in the totals and left
// to the caller to turn into an exit status. Batches already sent when
// a transport error occurs are not rolled back.
func (imp *Importer) Run(ctx context.Context) (*core.RunTotals, error) {
	format, err := ResolveFormat(imp.config.Input, imp.config.Format)
	if err != nil {
		return nil, err
	}

	var rule *SplitRule
	if format == FormatDir {
		rule, err = ParseSplitRule(imp.config.SplitRule)
		if err != nil {
			return nil, err
		}
	}

	docs, err := NewLoader(imp.config.LanguageCode, rule).Load(imp.config.Input, format)
	if err != nil {
		return nil, err
	}
	slog.Info("documents loaded", "count", len(docs), "format", format)

	totals := &core.RunTotals{}
	if imp.config.DryRun {
		fmt.Fprintf(imp.out, "loaded %d documents\n", len(docs))
		return totals, nil
	}

	batches, err := Chunk(docs, imp.config.BatchSize)
	if err != nil {
		return nil, err
	}

	for i, batch := range batches {
		result, err := imp.sender.Send(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}

		totals.Add(result)
		fmt.Fprintf(imp.out, "batch %d/%d: created=%d failed=%d\n", i+1, len(batches), result.Created, result.Failed)
		if result.Failed > 0 {
			for _, item := range result.Results {
				if item.Error != "" {
					fmt.Fprintf(imp.out, "  index=%d: %s\n", item.Index, item.Error)
				}
			}
		}
	}

	fmt.Fprintf(imp.out, "done: created=%d failed=%d\n", totals.Created, totals.Failed)
	return totals, nil
}
