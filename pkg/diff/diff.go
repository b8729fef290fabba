// Package diff computes the difference between a configuration map and a
// template's defaults, classifying each differing key as added, modified or
// removed, and implements revert back to the baseline.
//
// Classification is value-based: a key set to "" is indistinguishable from a
// key that is absent. Both sides are read through the same ""-for-missing
// lens, so "explicitly cleared" and "never touched" collapse into one case.
package diff

import (
	"sort"

	"github.com/walteh/envwiz/pkg/schema"
)

// ChangeType classifies one diff entry.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"    // default empty, current set
	ChangeModified ChangeType = "modified" // both set, values differ
	ChangeRemoved  ChangeType = "removed"  // default set, current empty
)

// Entry is one classified difference between current and baseline values.
type Entry struct {
	Field        string     `json:"field"`
	Category     string     `json:"category"`
	Type         ChangeType `json:"type"`
	CurrentValue string     `json:"current_value"`
	DefaultValue string     `json:"default_value"`
}

// Result is the full diff between a configuration and a baseline.
type Result struct {
	Entries      []Entry `json:"entries"`
	TotalChanges int     `json:"total_changes"`
	HasChanges   bool    `json:"has_changes"`
}

// Compute diffs config against defaults over the union of their keys.
// Entries come back sorted by (category, field) for stable display order;
// keys equal on both sides (including absent from both) produce nothing.
func Compute(config, defaults map[string]string) Result {
	union := make(map[string]bool, len(config)+len(defaults))
	for k := range config {
		union[k] = true
	}
	for k := range defaults {
		union[k] = true
	}

	entries := make([]Entry, 0, len(union))
	for k := range union {
		cur := config[k]
		def := defaults[k]
		if cur == def {
			continue
		}

		var t ChangeType
		switch {
		case def == "":
			t = ChangeAdded
		case cur == "":
			t = ChangeRemoved
		default:
			t = ChangeModified
		}

		entries = append(entries, Entry{
			Field:        k,
			Category:     schema.CategoryOf(k),
			Type:         t,
			CurrentValue: cur,
			DefaultValue: def,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Field < entries[j].Field
	})

	return Result{
		Entries:      entries,
		TotalChanges: len(entries),
		HasChanges:   len(entries) > 0,
	}
}

// RevertField returns a new map with the named field restored to its
// baseline value. When the baseline has no such key the field is dropped
// entirely. The input maps are never mutated.
func RevertField(field string, config, defaults map[string]string) map[string]string {
	out := make(map[string]string, len(config))
	for k, v := range config {
		out[k] = v
	}
	if def, ok := defaults[field]; ok {
		out[field] = def
	} else {
		delete(out, field)
	}
	return out
}

// RevertAll resets to the baseline wholesale: the result is a copy of
// defaults, and keys only present in config are dropped even when they are
// unrelated to the template. This is reset-to-template, not a merge.
func RevertAll(config, defaults map[string]string) map[string]string {
	_ = config
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}
