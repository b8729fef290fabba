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

// Package validate applies the per-field rule sets to a configuration map.
// Validation never throws: malformed values produce ValidationError values,
// and the input map is never mutated.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/walteh/envwiz/pkg/rules"
)

// Severity distinguishes blocking errors from advisory warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is one field-scoped finding. It is a value, not a Go
// error; findings are accumulated and returned, never thrown.
type ValidationError struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Type    Severity `json:"type"`
}

// Result is the outcome of validating a whole configuration.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Field evaluates every rule for the named field against the given value,
// in rule order, without short-circuiting. One error per failing rule.
func Field(name, value string, config map[string]string) []ValidationError {
	var errs []ValidationError
	for _, r := range rules.Get(name) {
		if !r.Evaluate(value, config) {
			errs = append(errs, ValidationError{
				Field:   name,
				Message: r.Message,
				Type:    SeverityError,
			})
		}
	}
	return errs
}

// Config validates every key present in the config map, then runs the two
// cross-field dependency passes.
//
// Only keys actually set in the map get per-field validation; a required
// field that was never touched is deliberately not flagged. The dependency
// passes below are the single exception: when DB_TYPE or EXECUTIONS_MODE
// activate a backend, its fields are checked even when absent.
func Config(config map[string]string) Result {
	res := Result{Warnings: []ValidationError{}}

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		res.Errors = append(res.Errors, Field(k, config[k], config)...)
	}

	if config["DB_TYPE"] == "postgresdb" {
		res.Errors = appendDependencyErrors(res.Errors, config, rules.PostgresRequired,
			"is required when DB_TYPE is postgresdb")
	}
	if config["EXECUTIONS_MODE"] == "queue" {
		res.Errors = appendDependencyErrors(res.Errors, config, rules.RedisRequired,
			"is required when EXECUTIONS_MODE is queue")
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// appendDependencyErrors flags each listed field whose value is missing or
// blank, skipping fields that already carry an error so the per-field
// dependency rule and this pass never double-report.
func appendDependencyErrors(errs []ValidationError, config map[string]string, fields []string, reason string) []ValidationError {
	for _, f := range fields {
		if strings.TrimSpace(config[f]) != "" {
			continue
		}
		if hasErrorFor(errs, f) {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   f,
			Message: fmt.Sprintf("%s %s", f, reason),
			Type:    SeverityError,
		})
	}
	return errs
}

func hasErrorFor(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// CanGenerate reports whether the configuration is clean enough to render.
func CanGenerate(config map[string]string) bool {
	return Config(config).Valid
}

// ErrorsByField groups the flat error list by field name, preserving
// encounter order within each field's list.
func ErrorsByField(config map[string]string) map[string][]ValidationError {
	out := make(map[string][]ValidationError)
	for _, e := range Config(config).Errors {
		out[e.Field] = append(out[e.Field], e)
	}
	return out
}
