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

import "errors"

// Domain error classes. Specific causes are wrapped around these
// sentinels with fmt.Errorf("%w: ...") so callers can classify a
// failure with errors.Is and map it to an exit status.
var (
	// ErrConfiguration indicates invalid run parameters. It is always
	// detected before any I/O happens.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrValidation indicates structurally sound input that fails the
	// minimum content requirements (missing directory, no importable
	// files, a file that splits into zero paragraphs).
	ErrValidation = errors.New("input validation failed")

	// ErrFormat indicates a JSON input file that is neither an array of
	// documents nor an object with a documents array.
	ErrFormat = errors.New("malformed input file")
)
