package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]string{}
	for _, cat := range Categories() {
		require.NotEmpty(t, cat.ID, "every category needs an id")
		for _, f := range cat.Fields {
			prev, dup := seen[f.Name]
			require.False(t, dup, "field %s appears in both %s and %s", f.Name, prev, cat.ID)
			seen[f.Name] = cat.ID
			assert.NotEmpty(t, f.Description, "field %s needs a description", f.Name)
		}
	}
	assert.GreaterOrEqual(t, len(seen), 40, "catalog should cover the documented surface")
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "general", CategoryOf("N8N_HOST"))
	assert.Equal(t, "database", CategoryOf("DB_POSTGRESDB_HOST"))
	assert.Equal(t, "queue", CategoryOf("QUEUE_BULL_REDIS_HOST"))
	assert.Equal(t, UnknownCategory, CategoryOf("SOME_CUSTOM_KEY"))
}

func TestFieldByName(t *testing.T) {
	f := FieldByName("N8N_PORT")
	require.NotNil(t, f)
	assert.Equal(t, TypeNumber, f.Type)
	assert.True(t, f.Required)
	assert.Equal(t, "5678", f.Default)

	assert.Nil(t, FieldByName("NOPE"), "unknown names return nil")
}

func TestTemplateByID(t *testing.T) {
	tpl := TemplateByID("quick-start")
	require.NotNil(t, tpl)
	assert.Equal(t, "Quick Start", tpl.Name)
	assert.Equal(t, "sqlite", tpl.Presets["DB_TYPE"])

	assert.Nil(t, TemplateByID("no-such-template"))
}

func TestTemplatePresetsReferenceValidScenarios(t *testing.T) {
	for _, tpl := range Templates() {
		require.NotEmpty(t, tpl.Presets, "template %s should carry presets", tpl.ID)
		for _, cat := range tpl.Categories {
			found := false
			for _, c := range Categories() {
				if c.ID == cat {
					found = true
					break
				}
			}
			assert.True(t, found, "template %s references unknown category %s", tpl.ID, cat)
		}
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "5678", d["N8N_PORT"])
	assert.Equal(t, "sqlite", d["DB_TYPE"])
	_, ok := d["WEBHOOK_URL"]
	assert.False(t, ok, "fields without defaults are omitted")

	// callers own the map
	d["N8N_PORT"] = "1"
	assert.Equal(t, "5678", Defaults()["N8N_PORT"], "Defaults returns a fresh copy")
}

func TestFieldOrder(t *testing.T) {
	a, ok := FieldOrder("N8N_HOST")
	require.True(t, ok)
	b, ok := FieldOrder("N8N_PORT")
	require.True(t, ok)
	assert.Less(t, a, b, "catalog order follows declaration order")

	_, ok = FieldOrder("CUSTOM")
	assert.False(t, ok, "unknown fields have no catalog position")
}
