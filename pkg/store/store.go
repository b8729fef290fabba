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

// Package store persists user-created templates in a JSON file with CRUD
// semantics and stable error codes. Corruption never propagates: an
// unreadable store file is cleared and treated as empty.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/envwiz/pkg/schema"
)

// maxFileBytes caps the size of the store file. Writes that would
// exceed it fail with QUOTA_EXCEEDED, mirroring the quota behavior of the
// browser storage this store stands in for.
const maxFileBytes = 256 * 1024

// CustomTemplate is a user-created template with identity metadata.
type CustomTemplate struct {
	schema.Template
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the payload for Create.
type CreateInput struct {
	Name        string
	Description string
	Icon        string
	Categories  []string
	Presets     map[string]string
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Icon        *string
	Categories  []string
	Presets     map[string]string
}

// Store is a file-backed template store. Safe for concurrent use.
type Store struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns the per-user store location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrapError(CodeNotAvailable, err, "resolving home directory")
	}
	return filepath.Join(home, ".envwiz", "templates.json"), nil
}

// New creates a store at the given path, creating parent directories.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, newError(CodeInvalidData, "store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, wrapError(CodeNotAvailable, err, "creating store directory")
	}
	return &Store{path: path}, nil
}

// List returns every stored template.
func (s *Store) List(ctx context.Context) ([]CustomTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the template with the given id. NOT_FOUND when missing.
func (s *Store) Get(ctx context.Context, id string) (*CustomTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, newError(CodeNotFound, "template %s not found", id)
}

// Create stores a new template. Names must be unique case-insensitively
// across existing custom templates.
func (s *Store) Create(ctx context.Context, in CreateInput) (*CustomTemplate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, newError(CodeInvalidData, "template name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if nameTaken(all, in.Name, "") {
		return nil, newError(CodeDuplicateName, "a template named %q already exists", in.Name)
	}

	now := time.Now().UTC()
	tpl := CustomTemplate{
		Template: schema.Template{
			ID:          uuid.NewString(),
			Name:        in.Name,
			Description: in.Description,
			Icon:        in.Icon,
			Categories:  in.Categories,
			Presets:     in.Presets,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if tpl.Presets == nil {
		tpl.Presets = map[string]string{}
	}

	all = append(all, tpl)
	if err := s.save(ctx, all); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update applies a partial update to the template with the given id.
func (s *Store) Update(ctx context.Context, id string, in UpdateInput) (*CustomTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, newError(CodeNotFound, "template %s not found", id)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, newError(CodeInvalidData, "template name is required")
		}
		if nameTaken(all, *in.Name, id) {
			return nil, newError(CodeDuplicateName, "a template named %q already exists", *in.Name)
		}
		all[idx].Name = *in.Name
	}
	if in.Description != nil {
		all[idx].Description = *in.Description
	}
	if in.Icon != nil {
		all[idx].Icon = *in.Icon
	}
	if in.Categories != nil {
		all[idx].Categories = in.Categories
	}
	if in.Presets != nil {
		all[idx].Presets = in.Presets
	}
	all[idx].UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, all); err != nil {
		return nil, err
	}
	return &all[idx], nil
}

// Delete removes the template with the given id. NOT_FOUND when missing.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	found := false
	for _, t := range all {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return newError(CodeNotFound, "template %s not found", id)
	}

	return s.save(ctx, kept)
}

func nameTaken(all []CustomTemplate, name, excludeID string) bool {
	for _, t := range all {
		if t.ID != excludeID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// load reads the store file. A missing file is an empty store; a corrupted
// file is cleared, logged, and also treated as empty.
func (s *Store) load(ctx context.Context) ([]CustomTemplate, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []CustomTemplate{}, nil
		}
		return nil, wrapError(CodeStorageError, err, "reading store file")
	}

	var all []CustomTemplate
	if err := json.Unmarshal(data, &all); err != nil {
		logger.Warn().Str("path", s.path).Err(err).Msg("store file corrupted, clearing it")
		if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, wrapError(CodeCorruptedData, rmErr, "clearing corrupted store file")
		}
		return []CustomTemplate{}, nil
	}
	return all, nil
}

// save writes the store file atomically via a temp file rename.
func (s *Store) save(ctx context.Context, all []CustomTemplate) error {
	logger := zerolog.Ctx(ctx)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return wrapError(CodeStorageError, err, "encoding store file")
	}
	if len(data) > maxFileBytes {
		return newError(CodeQuotaExceeded, "store file would exceed %d bytes", maxFileBytes)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return wrapError(CodeStorageError, err, "writing store file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return wrapError(CodeStorageError, err, "replacing store file")
	}

	logger.Debug().Str("path", s.path).Int("templates", len(all)).Msg("store saved")
	return nil
}
