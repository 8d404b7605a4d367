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
	"regexp"
	"strings"

	"github.com/drschille/MessageSearchBE/core"
)

// SplitModeBlankLine splits documents on runs of blank lines. It is the
// default paragraph split rule.
const SplitModeBlankLine = "blankline"

// splitModeDelimiterPrefix introduces the literal-delimiter rule, e.g.
// "delimiter:---".
const splitModeDelimiterPrefix = "delimiter:"

// blankLines matches one or more consecutive blank (whitespace-only)
// lines separating two paragraphs.
var blankLines = regexp.MustCompile(`\n\s*\n+`)

// SplitRule is a parsed paragraph split rule. The zero delimiter means
// blank-line splitting.
type SplitRule struct {
	delimiter string
}

// ParseSplitRule parses a split rule string. Recognized rules are
// "blankline" and "delimiter:<token>"; this is a closed set. Parsing is
// pure so configuration errors surface before any file is read.
func ParseSplitRule(mode string) (*SplitRule, error) {
	if mode == SplitModeBlankLine {
		return &SplitRule{}, nil
	}
	if strings.HasPrefix(mode, splitModeDelimiterPrefix) {
		delimiter := mode[len(splitModeDelimiterPrefix):]
		if delimiter == "" {
			return nil, fmt.Errorf("%w: delimiter must not be empty", core.ErrConfiguration)
		}
		return &SplitRule{delimiter: delimiter}, nil
	}
	return nil, fmt.Errorf("%w: unsupported split rule: %s", core.ErrConfiguration, mode)
}

// Split breaks text into paragraph segments. Every segment is trimmed
// of surrounding whitespace, segments that trim to nothing are dropped,
// and the relative order of the remaining segments matches the source.
func (r *SplitRule) Split(text string) []string {
	var parts []string
	if r.delimiter == "" {
		parts = blankLines.Split(text, -1)
	} else {
		parts = strings.Split(text, r.delimiter)
	}

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}
