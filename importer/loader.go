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
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/drschille/MessageSearchBE/core"
)

// Format identifies the input loading strategy.
type Format string

const (
	// FormatDir loads documents from a directory of .txt/.md files.
	FormatDir Format = "dir"
	// FormatJSON passes documents through from a JSON record file.
	FormatJSON Format = "json"
)

// ResolveFormat picks the loading strategy for the input path. An
// explicit forced format wins; otherwise the path is inspected and a
// directory selects FormatDir, anything else FormatJSON.
func ResolveFormat(path string, forced string) (Format, error) {
	switch forced {
	case string(FormatDir):
		return FormatDir, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case "":
	default:
		return "", fmt.Errorf("%w: unknown format %q (expected dir or json)", core.ErrConfiguration, forced)
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return FormatDir, nil
	}
	return FormatJSON, nil
}

// Loader builds ImportDocuments from an input path.
type Loader struct {
	languageCode string
	rule         *SplitRule
}

// NewLoader creates a loader. rule may be nil when only the JSON
// strategy will be used.
func NewLoader(languageCode string, rule *SplitRule) *Loader {
	return &Loader{
		languageCode: languageCode,
		rule:         rule,
	}
}

// Load reads all documents from path using the given strategy. The
// load is all-or-nothing: any failure aborts without returning a
// partial document set.
func (l *Loader) Load(path string, format Format) ([]core.ImportDocument, error) {
	if format == FormatDir {
		return l.loadFromDir(path)
	}
	return l.loadFromJSON(path)
}

// loadFromDir builds one document per importable file in the immediate
// directory listing, in ascending name order. Only regular files with a
// case-insensitive .txt or .md extension are importable; symlinks are
// resolved, so a link to a regular file counts.
func (l *Loader) loadFromDir(dir string) ([]core.ImportDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read input directory: %v", core.ErrValidation, err)
	}

	var docs []core.ImportDocument
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		doc, err := l.buildDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded document", "file", entry.Name(), "paragraphs", len(doc.Paragraphs))
		docs = append(docs, core.NewDocument(doc))
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no .txt or .md files found in %s", core.ErrValidation, dir)
	}
	return docs, nil
}

// buildDocument reads one text file and assembles a document from its
// paragraphs. The title is the file name without its extension.
func (l *Loader) buildDocument(path string) (*core.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", core.ErrValidation, path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", core.ErrValidation, path)
	}

	bodies := l.rule.Split(string(content))
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: empty document: %s", core.ErrValidation, path)
	}

	paragraphs := make([]core.Paragraph, len(bodies))
	for i, body := range bodies {
		paragraphs[i] = core.Paragraph{
			Position:     i,
			Body:         body,
			LanguageCode: l.languageCode,
		}
	}

	name := filepath.Base(path)
	return &core.Document{
		Title:        strings.TrimSuffix(name, filepath.Ext(name)),
		LanguageCode: l.languageCode,
		Paragraphs:   paragraphs,
		Publish:      true,
	}, nil
}

// loadFromJSON reads a record file and passes its documents through
// without per-field validation. Accepted shapes are a top-level array
// of records or an object with a "documents" array.
func (l *Loader) loadFromJSON(path string) ([]core.ImportDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: input file not found: %s", core.ErrValidation, path)
	}

	// A literal "null" decodes into a nil slice without error, so a
	// nil result falls through to the object shape and then fails.
	var records []json.RawMessage
	if err := json.Unmarshal(content, &records); err != nil || records == nil {
		var wrapper struct {
			Documents []json.RawMessage `json:"documents"`
		}
		if err := json.Unmarshal(content, &wrapper); err != nil || wrapper.Documents == nil {
			return nil, fmt.Errorf("%w: expected a JSON array of documents or an object with a documents array", core.ErrFormat)
		}
		records = wrapper.Documents
	}

	docs := make([]core.ImportDocument, len(records))
	for i, record := range records {
		docs[i] = core.NewOpaqueDocument(record)
	}
	return docs, nil
}
