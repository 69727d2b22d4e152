// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dir loads configuration sources from a directory.
//
// Dir reads every file in the top level of the directory whose extension has
// an unmarshal function, and returns one cascade.Source per file, named by
// the file name without extension. E.g. `production-web.yaml` is loaded as
// the source `production-web`.
//
// By default, it parses `.json`, `.toml`, `.yaml` and `.yml` files, in that
// order for files with the same name. Files with other extensions are skipped.
// Empty files are loaded as empty sources, and a directory that does not
// exist has no sources.
package dir

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/cascade"
)

// VarConfigDir is the environment variable that lists the config directories.
const VarConfigDir = "NODE_CONFIG_DIR"

// Dir is a loader that loads configuration sources from a directory.
//
// To create a new Dir, call [New].
type Dir struct {
	fs         fs.FS
	name       string
	logger     *slog.Logger
	extensions []extension
}

type extension struct {
	ext       string
	unmarshal func([]byte, any) error
}

// New creates a Dir with the given fs.FS and Option(s).
//
// It panics if the fs is nil.
func New(fsys fs.FS, opts ...Option) Dir {
	if fsys == nil {
		panic("cannot create Dir with nil fs.FS")
	}

	option := &options{
		fs: fsys,
		extensions: []extension{
			{ext: ".json", unmarshal: json.Unmarshal},
			{ext: ".toml", unmarshal: toml.Unmarshal},
			{ext: ".yaml", unmarshal: yaml.Unmarshal},
			{ext: ".yml", unmarshal: yaml.Unmarshal},
		},
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("cascade.dir")

	return Dir(*option)
}

// FromEnv creates a Dir for each directory listed in NODE_CONFIG_DIR,
// separated by the OS path list separator. It uses `./config` if it is not set.
func FromEnv(env cascade.Env, opts ...Option) []Dir {
	value := env[VarConfigDir]
	if value == "" {
		value = "config"
	}

	var dirs []Dir
	for _, path := range filepath.SplitList(value) {
		if path == "" {
			continue
		}
		dirs = append(dirs, New(os.DirFS(path), append([]Option{WithName(path)}, opts...)...))
	}

	return dirs
}

// LoadAll loads sources from all the given Dirs, in the given order.
func LoadAll(dirs ...Dir) ([]cascade.Source, error) {
	var sources []cascade.Source
	for _, dir := range dirs {
		loaded, err := dir.Load()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", dir, err)
		}
		sources = append(sources, loaded...)
	}

	return sources, nil
}

// Load returns the sources in the directory, ordered by name,
// and by extension priority for the same name.
func (d Dir) Load() ([]cascade.Source, error) {
	entries, err := fs.ReadDir(d.fs, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Warn("Config directory does not exist.", "dir", d.String())

			return nil, nil
		}

		return nil, fmt.Errorf("read dir: %w", err)
	}

	type configFile struct {
		path     string
		name     string
		priority int
	}
	files := make([]configFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Resolve symlinks, e.g. keys of a Kubernetes ConfigMap volume.
		info, err := fs.Stat(d.fs, entry.Name())
		if err != nil || !info.Mode().IsRegular() {
			d.logger.Debug("Config file is not a regular file, skipped.", "file", entry.Name())

			continue
		}

		ext := filepath.Ext(entry.Name())
		priority := slices.IndexFunc(d.extensions, func(e extension) bool { return e.ext == ext })
		if priority < 0 {
			d.logger.Debug("Config file has unsupported extension, skipped.", "file", entry.Name())

			continue
		}
		files = append(files, configFile{
			path:     entry.Name(),
			name:     strings.TrimSuffix(entry.Name(), ext),
			priority: priority,
		})
	}
	slices.SortStableFunc(files, func(a, b configFile) int {
		if c := cmp.Compare(a.name, b.name); c != 0 {
			return c
		}

		return cmp.Compare(a.priority, b.priority)
	})

	sources := make([]cascade.Source, 0, len(files))
	for _, file := range files {
		values, err := d.parse(file.path, d.extensions[file.priority].unmarshal)
		if err != nil {
			return nil, err
		}
		sources = append(sources, cascade.Source{Name: file.name, Values: values})
	}
	d.logger.Debug("Config files have been loaded.", "dir", d.String(), "files", len(sources))

	return sources, nil
}

func (d Dir) parse(path string, unmarshal func([]byte, any) error) (map[string]any, error) {
	bytes, err := fs.ReadFile(d.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var out map[string]any
	if len(strings.TrimSpace(string(bytes))) > 0 {
		if err := unmarshal(bytes, &out); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	}
	if out == nil {
		out = make(map[string]any)
	}

	return out, nil
}

func (d Dir) String() string {
	if d.name == "" {
		return "dir"
	}

	return "dir:" + d.name
}
