// Copyright 2025 walteh LLC
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

package i18n

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultMarker is the suffix that flags a string literal as translatable.
const DefaultMarker = ".i18n"

// 🔍 Extractor pulls translatable string literals out of source text
type Extractor struct {
	marker  string
	pattern *regexp.Regexp
}

// 🏭 NewExtractor creates an extractor for literals followed by marker.
//
// A literal is a single- or double-quoted run ended by the same quote
// character; the body is the shortest run that is directly followed by the
// closing quote and the marker, so it may itself contain quote characters.
func NewExtractor(marker string) (*Extractor, error) {
	if marker == "" {
		return nil, errors.New("marker is required")
	}
	if strings.ContainsAny(marker, "\r\n") {
		return nil, errors.Errorf("marker %q must not span lines", marker)
	}

	m := regexp.QuoteMeta(marker)
	pattern, err := regexp.Compile(fmt.Sprintf(`"(.*?)"%s|'(.*?)'%s`, m, m))
	if err != nil {
		return nil, errors.Errorf("compiling pattern for marker %q: %w", marker, err)
	}

	return &Extractor{marker: marker, pattern: pattern}, nil
}

// Marker returns the suffix this extractor looks for.
func (e *Extractor) Marker() string {
	return e.marker
}

// ExtractLine returns every marked literal in line, left to right.
func (e *Extractor) ExtractLine(line string) []string {
	matches := e.pattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		// m[2:4] is the double-quoted body, m[4:6] the single-quoted one
		if m[2] >= 0 {
			out = append(out, line[m[2]:m[3]])
		} else {
			out = append(out, line[m[4]:m[5]])
		}
	}
	return out
}

// Extract returns every marked literal in content in line order. Any of
// "\r\n", "\r" and "\n" ends a line, and a literal never spans lines.
func (e *Extractor) Extract(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var out []string
	for _, line := range strings.Split(content, "\n") {
		out = append(out, e.ExtractLine(line)...)
	}
	return out
}
