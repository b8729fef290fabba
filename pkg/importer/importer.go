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

// Package importer parses foreign configuration formats (env, compose,
// json, hcl) into the flat key→string map the rest of the tool consumes.
package importer

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for foreign-format parsers
type Parser interface {
	// 📝 Parse extracts a flat key→value map from the raw bytes
	Parse(ctx context.Context, data []byte) (map[string]string, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is the list of registered parsers, in registration order
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 ForFile returns a parser that can handle the given file, or nil
func ForFile(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load reads and parses a configuration file into a flat map
func Load(ctx context.Context, path string) (map[string]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("importing configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	p := ForFile(path)
	if p == nil {
		return nil, errors.Errorf("no importer found for file: %s", path)
	}

	out, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug().Int("keys", len(out)).Msg("imported configuration")
	return out, nil
}

// 🔬 Sniff guesses a parser from the content itself, for data without a
// usable filename (stdin, pasted text). JSON and YAML are detected by their
// leading structure, anything else falls back to the env parser.
func Sniff(data []byte) Parser {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return &JSONParser{}
	case strings.Contains(trimmed, "services:"):
		return &ComposeParser{}
	default:
		return &EnvParser{}
	}
}
