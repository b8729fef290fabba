package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Classification(t *testing.T) {
	tests := []struct {
		name     string
		config   map[string]string
		defaults map[string]string
		want     []Entry
	}{
		{
			name:     "identical_maps_no_entries",
			config:   map[string]string{"N8N_HOST": "localhost"},
			defaults: map[string]string{"N8N_HOST": "localhost"},
			want:     []Entry{},
		},
		{
			name:     "both_empty_no_entries",
			config:   map[string]string{},
			defaults: map[string]string{},
			want:     []Entry{},
		},
		{
			name:     "added_when_default_empty",
			config:   map[string]string{"WEBHOOK_URL": "https://x.example"},
			defaults: map[string]string{},
			want: []Entry{
				{Field: "WEBHOOK_URL", Category: "general", Type: ChangeAdded, CurrentValue: "https://x.example", DefaultValue: ""},
			},
		},
		{
			name:     "removed_when_current_empty",
			config:   map[string]string{},
			defaults: map[string]string{"N8N_HOST": "localhost"},
			want: []Entry{
				{Field: "N8N_HOST", Category: "general", Type: ChangeRemoved, CurrentValue: "", DefaultValue: "localhost"},
			},
		},
		{
			name:     "explicit_empty_reads_as_removed",
			config:   map[string]string{"N8N_HOST": ""},
			defaults: map[string]string{"N8N_HOST": "localhost"},
			want: []Entry{
				{Field: "N8N_HOST", Category: "general", Type: ChangeRemoved, CurrentValue: "", DefaultValue: "localhost"},
			},
		},
		{
			name:     "modified_when_both_set",
			config:   map[string]string{"N8N_PORT": "9000"},
			defaults: map[string]string{"N8N_PORT": "5678"},
			want: []Entry{
				{Field: "N8N_PORT", Category: "general", Type: ChangeModified, CurrentValue: "9000", DefaultValue: "5678"},
			},
		},
		{
			name:     "unknown_field_gets_sentinel_category",
			config:   map[string]string{"MY_FLAG": "on"},
			defaults: map[string]string{},
			want: []Entry{
				{Field: "MY_FLAG", Category: "unknown", Type: ChangeAdded, CurrentValue: "on", DefaultValue: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.config, tt.defaults)
			if diff := cmp.Diff(tt.want, res.Entries); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), res.TotalChanges, "total should match entry count")
			assert.Equal(t, len(tt.want) > 0, res.HasChanges, "has-changes should follow entry count")
		})
	}
}

func TestCompute_Reflexivity(t *testing.T) {
	configs := []map[string]string{
		{},
		{"N8N_HOST": "localhost"},
		{"N8N_HOST": "x", "N8N_PORT": "1", "CUSTOM": "y", "DB_TYPE": "sqlite"},
	}
	for _, c := range configs {
		res := Compute(c, c)
		assert.False(t, res.HasChanges, "diffing a config against itself must be empty")
		assert.Empty(t, res.Entries)
	}
}

func TestCompute_SortedByCategoryThenField(t *testing.T) {
	res := Compute(map[string]string{
		"QUEUE_BULL_REDIS_HOST": "redis",   // queue
		"DB_POSTGRESDB_HOST":    "pg",      // database
		"N8N_HOST":              "example", // general
		"ZZ_CUSTOM":             "1",       // unknown
		"AA_CUSTOM":             "2",       // unknown
	}, map[string]string{})

	require.Len(t, res.Entries, 5)
	var got []string
	for _, e := range res.Entries {
		got = append(got, e.Category+"/"+e.Field)
	}
	want := []string{
		"database/DB_POSTGRESDB_HOST",
		"general/N8N_HOST",
		"queue/QUEUE_BULL_REDIS_HOST",
		"unknown/AA_CUSTOM",
		"unknown/ZZ_CUSTOM",
	}
	assert.Equal(t, want, got, "entries should be ordered by (category, field)")
}

func TestRevertField(t *testing.T) {
	config := map[string]string{"N8N_PORT": "9000", "CUSTOM": "x"}
	defaults := map[string]string{"N8N_PORT": "5678"}

	t.Run("restores_baseline_value", func(t *testing.T) {
		got := RevertField("N8N_PORT", config, defaults)
		assert.Equal(t, "5678", got["N8N_PORT"], "field should return to the template value")
		assert.Equal(t, "x", got["CUSTOM"], "other keys pass through")
	})

	t.Run("drops_field_missing_from_baseline", func(t *testing.T) {
		got := RevertField("CUSTOM", config, defaults)
		_, ok := got["CUSTOM"]
		assert.False(t, ok, "field absent from defaults should be removed entirely")
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		_ = RevertField("N8N_PORT", config, defaults)
		assert.Equal(t, "9000", config["N8N_PORT"], "input config must stay untouched")
	})

	t.Run("rediff_shows_no_entry_for_reverted_field", func(t *testing.T) {
		got := RevertField("N8N_PORT", config, defaults)
		res := Compute(got, defaults)
		for _, e := range res.Entries {
			assert.NotEqual(t, "N8N_PORT", e.Field, "reverted field must not reappear in the diff")
		}
	})
}

func TestRevertAll(t *testing.T) {
	config := map[string]string{
		"N8N_PORT":  "9000",
		"UNRELATED": "kept nowhere", // dropped even though the template never knew it
	}
	defaults := map[string]string{"N8N_HOST": "localhost", "N8N_PORT": "5678"}

	got := RevertAll(config, defaults)

	if diff := cmp.Diff(defaults, got); diff != "" {
		t.Errorf("revert-all should equal the defaults exactly (-want +got):\n%s", diff)
	}

	// returned map is a copy, not the defaults map itself
	got["N8N_HOST"] = "changed"
	assert.Equal(t, "localhost", defaults["N8N_HOST"], "defaults must not be aliased")
	assert.Equal(t, "9000", config["N8N_PORT"], "input config must stay untouched")
}
