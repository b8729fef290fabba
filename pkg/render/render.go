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

// Package render turns a configuration map into one of four deployment
// artifact formats: a plain env file, a docker-compose file, a single docker
// run command, or a kubernetes manifest.
package render

import (
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/envwiz/pkg/schema"
	"gitlab.com/tozd/go/errors"
)

// Format selects the output artifact type.
type Format string

const (
	FormatEnv        Format = "env"
	FormatCompose    Format = "docker-compose"
	FormatDockerRun  Format = "docker-run"
	FormatKubernetes Format = "kubernetes"
)

// Formats lists every supported format in presentation order.
func Formats() []Format {
	return []Format{FormatEnv, FormatCompose, FormatDockerRun, FormatKubernetes}
}

const (
	toolName      = "envwiz"
	n8nImage      = "n8nio/n8n:latest"
	containerPort = "5678"

	// MaskPlaceholder replaces sensitive values when masking is on.
	MaskPlaceholder = "********"

	defaultComposeVersion = "3.8"
)

var composeVersions = []string{"3.7", "3.8", "3.9"}

// sensitivePatterns match (lowercased) key names whose values get masked.
var sensitivePatterns = []string{
	"*password*",
	"*secret*",
	"*key*",
	"*token*",
	"*credential*",
	"*pass",
}

// Options controls rendering. The zero value renders env format with the
// per-format comment default and no masking.
type Options struct {
	Format Format

	// ComposeVersion is the compose file version header. Empty means 3.8.
	ComposeVersion string

	// MaskSecrets replaces values of sensitive-named keys with a placeholder.
	MaskSecrets bool

	// IncludeComments toggles the generated header comments. Nil means the
	// per-format default; env output always carries its header regardless.
	IncludeComments *bool

	// WizardVersion is the tool version tag embedded in headers.
	WizardVersion string

	// Now overrides the header timestamp. Zero means time.Now. Tests use it
	// for reproducible output.
	Now time.Time
}

// entry is one surviving key/value pair after preprocessing. All four
// renderers consume the same ordered slice.
type entry struct {
	key   string
	value string
}

// Generate renders config into the chosen format.
func Generate(config map[string]string, opts Options) (string, error) {
	if opts.Format == "" {
		opts.Format = FormatEnv
	}
	if opts.ComposeVersion == "" {
		opts.ComposeVersion = defaultComposeVersion
	}
	if !validComposeVersion(opts.ComposeVersion) {
		return "", errors.Errorf("unsupported compose version %q (supported: %s)",
			opts.ComposeVersion, strings.Join(composeVersions, ", "))
	}

	entries := prepare(config, opts.MaskSecrets)

	switch opts.Format {
	case FormatEnv:
		return renderEnv(entries, opts), nil
	case FormatCompose:
		return renderCompose(entries, config, opts), nil
	case FormatDockerRun:
		return renderDockerRun(entries, config), nil
	case FormatKubernetes:
		return renderKubernetes(entries, opts), nil
	default:
		return "", errors.Errorf("unknown output format %q", opts.Format)
	}
}

// prepare drops empty values, fixes the canonical entry order (catalog order
// for recognized fields, then unknown keys sorted), and applies masking.
func prepare(config map[string]string, mask bool) []entry {
	known := make([]entry, 0, len(config))
	var unknown []entry
	for k, v := range config {
		if v == "" {
			continue
		}
		if mask && isSensitiveName(k) {
			v = MaskPlaceholder
		}
		if _, ok := schema.FieldOrder(k); ok {
			known = append(known, entry{key: k, value: v})
		} else {
			unknown = append(unknown, entry{key: k, value: v})
		}
	}

	sort.Slice(known, func(i, j int) bool {
		a, _ := schema.FieldOrder(known[i].key)
		b, _ := schema.FieldOrder(known[j].key)
		return a < b
	})
	sort.Slice(unknown, func(i, j int) bool {
		return unknown[i].key < unknown[j].key
	})

	return append(known, unknown...)
}

func isSensitiveName(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range sensitivePatterns {
		if ok, err := doublestar.Match(pattern, lower); err == nil && ok {
			return true
		}
	}
	return false
}

// wantsDatabaseService reports whether the compose output needs a postgres
// service block.
func wantsDatabaseService(config map[string]string) bool {
	return config["DB_TYPE"] == "postgresdb"
}

// wantsQueueService reports whether the compose output needs a redis
// service block.
func wantsQueueService(config map[string]string) bool {
	return config["EXECUTIONS_MODE"] == "queue"
}

// hostPort resolves the published port from N8N_PORT, falling back to the
// default container port when unset.
func hostPort(config map[string]string) string {
	if p := config["N8N_PORT"]; p != "" {
		return p
	}
	return containerPort
}

func validComposeVersion(v string) bool {
	for _, c := range composeVersions {
		if v == c {
			return true
		}
	}
	return false
}

func (o Options) timestamp() string {
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now.UTC().Format(time.RFC3339)
}

func (o Options) version() string {
	if o.WizardVersion == "" {
		return "dev"
	}
	return o.WizardVersion
}

// includeComments resolves the nil-means-default comment flag. Every format
// that can carry comments defaults to including them.
func (o Options) includeComments() bool {
	if o.IncludeComments == nil {
		return true
	}
	return *o.IncludeComments
}
