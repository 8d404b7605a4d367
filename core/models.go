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


package core

import "encoding/json"

// Paragraph is a single unit of indexable text within a document.
// Position is the zero-based index of the paragraph within its document.
type Paragraph struct {
	Position     int    `json:"position"`
	Body         string `json:"body"`
	LanguageCode string `json:"languageCode"`
}

// Document is a fully assembled document ready for import.
// Documents built from local text files always carry at least one
// paragraph; the loader rejects files that split into nothing.
type Document struct {
	Title        string      `json:"title"`
	LanguageCode string      `json:"languageCode"`
	Paragraphs   []Paragraph `json:"paragraphs"`
	Publish      bool        `json:"publish"`
}

// ImportDocument is what the import pipeline actually carries: either a
// Document assembled and validated by the loader, or an opaque JSON
// record passed through verbatim from an input file. Opaque records are
// only checked for being well-formed JSON; schema validation is the
// remote service's job. Exactly one of the two fields is set.
type ImportDocument struct {
	Doc *Document
	Raw json.RawMessage
}

// NewDocument wraps a loader-built document.
func NewDocument(doc *Document) ImportDocument {
	return ImportDocument{Doc: doc}
}

// NewOpaqueDocument wraps a raw JSON record taken verbatim from an
// input file.
func NewOpaqueDocument(raw json.RawMessage) ImportDocument {
	return ImportDocument{Raw: raw}
}

// MarshalJSON serializes whichever variant is present, so the transport
// layer can treat both kinds of document uniformly.
func (d ImportDocument) MarshalJSON() ([]byte, error) {
	if d.Raw != nil {
		return []byte(d.Raw), nil
	}
	return json.Marshal(d.Doc)
}

// ItemResult is the remote service's verdict on a single document
// within a batch. Error is empty when the document was accepted.
type ItemResult struct {
	Index int    `json:"index"`
	Error string `json:"error,omitempty"`
}

// BatchResult is the remote service's response to one batch call.
// The counts are trusted verbatim; the client never reconciles them
// against the number of documents it sent.
type BatchResult struct {
	Created int          `json:"created"`
	Failed  int          `json:"failed"`
	Results []ItemResult `json:"results"`
}

// RunTotals accumulates created/failed counts across all batches of a
// single import run. It is owned by the orchestrator and discarded
// when the run ends.
type RunTotals struct {
	Created int
	Failed  int
}

// Add folds one batch result into the totals.
func (t *RunTotals) Add(result *BatchResult) {
	t.Created += result.Created
	t.Failed += result.Failed
}
