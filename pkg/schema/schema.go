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

// Package schema holds the static catalog of recognized n8n configuration
// fields, their grouping into categories, and the built-in templates. All of
// it is immutable data defined at init time; nothing here is ever mutated.
package schema

// FieldType describes the semantic type of a configuration field. Values are
// always stored as strings regardless of type; the type only drives
// validation and UI hints.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEnum    FieldType = "enum"
)

// Field is a single recognized configuration key.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Default     string    `json:"default" yaml:"default"`
	Description string    `json:"description" yaml:"description"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`

	// FileSupport marks fields whose value may alternatively be supplied via
	// the _FILE suffix convention. Advisory only, validation is unaffected.
	FileSupport bool `json:"file_support,omitempty" yaml:"file_support,omitempty"`
}

// Category groups related fields for display and diff organization.
type Category struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Icon        string  `json:"icon" yaml:"icon"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Template is a named preset bundle: a subset of categories plus recommended
// starting values for a deployment scenario.
type Template struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Icon        string            `json:"icon" yaml:"icon"`
	Categories  []string          `json:"categories" yaml:"categories"`
	Presets     map[string]string `json:"presets" yaml:"presets"`
}

// UnknownCategory is the sentinel category id for fields that do not appear
// in the catalog. Diff entries for user-supplied keys resolve to it.
const UnknownCategory = "unknown"

// Categories returns the full static category catalog.
func Categories() []Category {
	return categories
}

// Templates returns the built-in templates.
func Templates() []Template {
	return templates
}

// TemplateByID returns the built-in template with the given id, or nil.
func TemplateByID(id string) *Template {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i]
		}
	}
	return nil
}

// FieldByName returns the catalog entry for a field name, or nil when the
// name is not a recognized key.
func FieldByName(name string) *Field {
	f, ok := fieldIndex[name]
	if !ok {
		return nil
	}
	return f
}

// CategoryOf resolves the category id a field belongs to. Unrecognized
// fields resolve to UnknownCategory.
func CategoryOf(fieldName string) string {
	if id, ok := categoryIndex[fieldName]; ok {
		return id
	}
	return UnknownCategory
}

// Defaults returns a fresh map of every cataloged field with a non-empty
// default value. Callers own the returned map.
func Defaults() map[string]string {
	out := make(map[string]string)
	for _, cat := range categories {
		for _, f := range cat.Fields {
			if f.Default != "" {
				out[f.Name] = f.Default
			}
		}
	}
	return out
}

// FieldOrder returns the position of a field in catalog order, and whether
// the field is cataloged at all. Renderers use this for stable output order.
func FieldOrder(name string) (int, bool) {
	i, ok := orderIndex[name]
	return i, ok
}

var (
	fieldIndex    = map[string]*Field{}
	categoryIndex = map[string]string{}
	orderIndex    = map[string]int{}
)

func init() {
	n := 0
	for ci := range categories {
		for fi := range categories[ci].Fields {
			f := &categories[ci].Fields[fi]
			fieldIndex[f.Name] = f
			categoryIndex[f.Name] = categories[ci].ID
			orderIndex[f.Name] = n
			n++
		}
	}
}
