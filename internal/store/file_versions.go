// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/models"
)

// fileVersionRepository stores each version as one JSON file under
// <dataDir>/<slug>/. Ordering is taken from the Timestamp field inside the
// files, not from file names: RFC 3339 timestamps in UTC compare correctly as
// strings.
type fileVersionRepository struct {
	dataDir string
	logger  *logger.Logger
}

// NewFileVersionRepository creates the data directory if needed and returns a
// [VersionRepository] backed by it.
func NewFileVersionRepository(dataDir string, logger *logger.Logger) (VersionRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %w", ErrSavingVersion, err)
	}

	return &fileVersionRepository{dataDir: dataDir, logger: logger}, nil
}

// versionFile pairs a loaded version with the file it came from, so pruning
// and replacement know what to delete or rewrite.
type versionFile struct {
	path    string
	version models.Version
}

func (r *fileVersionRepository) Latest(ctx context.Context, slug string) (models.Version, error) {
	files, err := r.load(ctx, slug)
	if err != nil {
		return models.Version{}, err
	}
	if len(files) == 0 {
		return models.Version{}, ErrNoVersions
	}

	return files[len(files)-1].version, nil
}

func (r *fileVersionRepository) Save(ctx context.Context, v models.Version) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(r.dataDir, v.Slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create slug dir: %w", ErrSavingVersion, err)
	}

	path := filepath.Join(dir, versionFileName(v))
	if err := writeVersionFile(path, v); err != nil {
		return err
	}

	return r.prune(ctx, v.Slug)
}

func (r *fileVersionRepository) ReplaceLatest(ctx context.Context, v models.Version) error {
	files, err := r.load(ctx, v.Slug)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoVersions
	}

	return writeVersionFile(files[len(files)-1].path, v)
}

func (r *fileVersionRepository) Stats(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	dirs, err := os.ReadDir(r.dataDir)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrReadingVersions, err)
	}

	slugs, files := 0, 0
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(r.dataDir, dir.Name()))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrReadingVersions, err)
		}

		count := 0
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".json") {
				count++
			}
		}
		if count > 0 {
			slugs++
			files += count
		}
	}

	return slugs, files, nil
}

// load reads every version file of slug, sorted oldest to newest by the
// timestamp stored inside the file. Files that fail to decode are skipped
// with a warning rather than failing the whole slug.
func (r *fileVersionRepository) load(ctx context.Context, slug string) ([]versionFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.dataDir, slug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingVersions, err)
	}

	files := make([]versionFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingVersions, err)
		}

		var v models.Version
		if err := json.Unmarshal(data, &v); err != nil {
			r.logger.Warn().Str("file", path).Err(err).Msg("skipping undecodable version file")
			continue
		}

		files = append(files, versionFile{path: path, version: v})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].version.Timestamp < files[j].version.Timestamp
	})

	return files, nil
}

// prune deletes the oldest version files of slug beyond models.MaxVersions.
func (r *fileVersionRepository) prune(ctx context.Context, slug string) error {
	files, err := r.load(ctx, slug)
	if err != nil {
		return err
	}
	if len(files) <= models.MaxVersions {
		return nil
	}

	for _, f := range files[:len(files)-models.MaxVersions] {
		if err := os.Remove(f.path); err != nil {
			return fmt.Errorf("%w: prune: %w", ErrSavingVersion, err)
		}
		r.logger.Debug().Str("slug", slug).Str("file", f.path).Msg("pruned old version")
	}

	return nil
}

func writeVersionFile(path string, v models.Version) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSavingVersion, err)
	}

	// Write-then-rename so a crash mid-write never leaves a truncated
	// version behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingVersion, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingVersion, err)
	}
	return nil
}

// versionFileName builds a unique, filesystem-safe name. The timestamp prefix
// keeps directory listings readable; uniqueness comes from the uuid suffix.
func versionFileName(v models.Version) string {
	ts := strings.ReplaceAll(v.Timestamp, ":", "-")
	return ts + "_" + uuid.NewString()[:8] + ".json"
}
