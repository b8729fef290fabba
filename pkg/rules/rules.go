// Package rules derives the ordered validation rule list for each
// configuration field from static classification tables. Rule lists are pure
// functions of the tables, so they are memoized per field name for the
// lifetime of the process.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Kind identifies what a rule checks.
type Kind string

const (
	KindRequired   Kind = "required"
	KindNumeric    Kind = "numeric"
	KindBoolean    Kind = "boolean"
	KindEnum       Kind = "enum"
	KindDependency Kind = "dependency"
)

// Rule is a single check against a field value. Evaluate returns true when
// the value passes. Dependency rules also read other keys from the full
// config, everything else ignores it.
type Rule struct {
	Kind     Kind
	Message  string
	Evaluate func(value string, config map[string]string) bool
}

var integerRe = regexp.MustCompile(`^-?\d+$`)

var cache = struct {
	mu sync.RWMutex
	m  map[string][]Rule
}{m: map[string][]Rule{}}

// Get returns the ordered rule list for a field name. The result is cached;
// build order is required, numeric, boolean, enum, then dependency rules.
func Get(fieldName string) []Rule {
	cache.mu.RLock()
	if rs, ok := cache.m[fieldName]; ok {
		cache.mu.RUnlock()
		return rs
	}
	cache.mu.RUnlock()

	rs := build(fieldName)

	cache.mu.Lock()
	cache.m[fieldName] = rs
	cache.mu.Unlock()
	return rs
}

// ResetCache clears the memoized rule lists. Rule construction is
// deterministic, so this only exists for test isolation.
func ResetCache() {
	cache.mu.Lock()
	cache.m = map[string][]Rule{}
	cache.mu.Unlock()
}

func build(fieldName string) []Rule {
	var rs []Rule

	if requiredFields[fieldName] {
		rs = append(rs, Rule{
			Kind:    KindRequired,
			Message: fmt.Sprintf("%s is required", fieldName),
			Evaluate: func(value string, _ map[string]string) bool {
				return value != ""
			},
		})
	}

	if numericFields[fieldName] {
		rs = append(rs, Rule{
			Kind:    KindNumeric,
			Message: fmt.Sprintf("%s must be an integer", fieldName),
			Evaluate: func(value string, _ map[string]string) bool {
				// empty is fine, required-ness is a separate rule
				return value == "" || integerRe.MatchString(value)
			},
		})
	}

	if booleanFields[fieldName] {
		rs = append(rs, Rule{
			Kind:    KindBoolean,
			Message: fmt.Sprintf("%s must be \"true\" or \"false\"", fieldName),
			Evaluate: func(value string, _ map[string]string) bool {
				return value == "" || value == "true" || value == "false"
			},
		})
	}

	if allowed, ok := enumFields[fieldName]; ok {
		rs = append(rs, Rule{
			Kind:    KindEnum,
			Message: fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(allowed, ", ")),
			Evaluate: func(value string, _ map[string]string) bool {
				if value == "" {
					return true
				}
				for _, a := range allowed {
					if value == a {
						return true
					}
				}
				return false
			},
		})
	}

	if postgresRequiredSet[fieldName] {
		rs = append(rs, Rule{
			Kind:    KindDependency,
			Message: fmt.Sprintf("%s is required when DB_TYPE is postgresdb", fieldName),
			Evaluate: func(value string, config map[string]string) bool {
				if config["DB_TYPE"] != "postgresdb" {
					return true
				}
				return strings.TrimSpace(value) != ""
			},
		})
	}

	if redisRequiredSet[fieldName] {
		rs = append(rs, Rule{
			Kind:    KindDependency,
			Message: fmt.Sprintf("%s is required when EXECUTIONS_MODE is queue", fieldName),
			Evaluate: func(value string, config map[string]string) bool {
				if config["EXECUTIONS_MODE"] != "queue" {
					return true
				}
				return strings.TrimSpace(value) != ""
			},
		})
	}

	return rs
}
