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

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "templates.json"))
	require.NoError(t, err, "store creation should succeed")
	return s
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tpl, err := s.Create(ctx, CreateInput{
		Name:        "My Setup",
		Description: "local dev",
		Presets:     map[string]string{"N8N_HOST": "localhost"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID, "created template should get an id")
	assert.False(t, tpl.CreatedAt.IsZero(), "created-at should be set")
	assert.Equal(t, tpl.CreatedAt, tpl.UpdatedAt, "timestamps match on creation")

	got, err := s.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Setup", got.Name)
	assert.Equal(t, "localhost", got.Presets["N8N_HOST"])
}

func TestCreate_DuplicateNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Create(ctx, CreateInput{Name: "My Setup"})
	require.NoError(t, err)

	_, err = s.Create(ctx, CreateInput{Name: "my setup"})
	require.Error(t, err, "case-insensitive name collision must fail")
	assert.Equal(t, CodeDuplicateName, CodeOf(err))
}

func TestCreate_EmptyName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(context.Background(), CreateInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidData, CodeOf(err))
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tpl, err := s.Create(ctx, CreateInput{Name: "Original"})
	require.NoError(t, err)

	newName := "Renamed"
	updated, err := s.Update(ctx, tpl.ID, UpdateInput{
		Name:    &newName,
		Presets: map[string]string{"DB_TYPE": "postgresdb"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "postgresdb", updated.Presets["DB_TYPE"])
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt),
		"updated-at should move forward")

	t.Run("missing_id", func(t *testing.T) {
		_, err := s.Update(ctx, "missing", UpdateInput{Name: &newName})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("rename_collision", func(t *testing.T) {
		other, err := s.Create(ctx, CreateInput{Name: "Other"})
		require.NoError(t, err)

		taken := "renamed" // case-insensitive clash with "Renamed"
		_, err = s.Update(ctx, other.ID, UpdateInput{Name: &taken})
		require.Error(t, err)
		assert.Equal(t, CodeDuplicateName, CodeOf(err))
	})

	t.Run("rename_to_own_name_is_fine", func(t *testing.T) {
		same := "Renamed"
		_, err := s.Update(ctx, tpl.ID, UpdateInput{Name: &same})
		assert.NoError(t, err, "a template may keep its own name")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tpl, err := s.Create(ctx, CreateInput{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, tpl.ID))

	_, err = s.Get(ctx, tpl.ID)
	assert.Equal(t, CodeNotFound, CodeOf(err), "deleted template should be gone")

	err = s.Delete(ctx, tpl.ID)
	require.Error(t, err, "double delete fails")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "fresh store lists nothing")

	_, err = s.Create(ctx, CreateInput{Name: "A"})
	require.NoError(t, err)
	_, err = s.Create(ctx, CreateInput{Name: "B"})
	require.NoError(t, err)

	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCorruptedFileRecovers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := New(path)
	require.NoError(t, err)

	all, err := s.List(ctx)
	require.NoError(t, err, "corruption must not surface as an error")
	assert.Empty(t, all, "corrupted store reads as empty")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupted file should have been cleared")

	// the store is usable again afterwards
	_, err = s.Create(ctx, CreateInput{Name: "Fresh"})
	assert.NoError(t, err)
}

func TestQuotaExceeded(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Create(ctx, CreateInput{
		Name:    "Huge",
		Presets: map[string]string{"BLOB": strings.Repeat("x", maxFileBytes)},
	})
	require.Error(t, err, "oversized writes must be refused")
	assert.Equal(t, CodeQuotaExceeded, CodeOf(err))

	all, listErr := s.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all, "refused write must not leave partial data")
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Equal(t, CodeStorageError, CodeOf(os.ErrPermission),
		"errors from outside the store map to STORAGE_ERROR")
}
