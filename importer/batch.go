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

	"github.com/drschille/MessageSearchBE/core"
)

// Chunk partitions documents into batches of at most size elements,
// preserving order. Every batch except possibly the last has exactly
// size elements; concatenating the batches reproduces the input.
// The batches share the input's backing array, which is safe because
// documents are immutable once loaded.
func Chunk(docs []core.ImportDocument, size int) ([][]core.ImportDocument, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", core.ErrConfiguration, size)
	}

	batches := make([][]core.ImportDocument, 0, (len(docs)+size-1)/size)
	for start := 0; start < len(docs); start += size {
		end := min(start+size, len(docs))
		batches = append(batches, docs[start:end])
	}
	return batches, nil
}
