// Package importer implements the bulk document import pipeline for a
// MessageSearch index.
//
// An import run loads documents either from a directory of .txt/.md
// files (split into paragraphs by a configurable rule) or from a JSON
// record file (passed through verbatim), groups them into size-bounded
// batches, and transmits each batch to the service's batch endpoint
// with bounded retries and exponential backoff. Per-document failures
// reported by the service are accumulated into run totals; transport
// failures abort the run.
package importer
