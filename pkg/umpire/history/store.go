// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history keeps finished games as YAML files on disk.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/umpire/pkg/internal/util"
)

const (
	prefix    = "game-"
	extension = ".yaml"
)

// ErrInvalidName is returned by Load for names which are not plain file
// names inside the store.
var ErrInvalidName = errors.New("history: invalid game name")

// Store is a directory of game records named game-1, game-2 and so on.
type Store struct {
	Dir string
}

// NewStore opens the store in dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	return &Store{Dir: dir}, nil
}

// Default opens the store under the user's data directory.
func Default() (*Store, error) {
	return NewStore(GamesDirectory)
}

func (store *Store) path(name string) string {
	return filepath.Join(store.Dir, name+extension)
}

// List returns the names of the stored games in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name, found := strings.CutSuffix(entry.Name(), extension)
		if entry.IsDir() || !found {
			continue
		}

		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return util.AlphanumLess(names[i], names[j])
	})

	return names, nil
}

// Save writes the record under the next free name and returns that name.
func (store *Store) Save(record Record) (string, error) {
	names, err := store.List()
	if err != nil {
		return "", err
	}

	next := 1
	for _, name := range names {
		number, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
		if err == nil && number >= next {
			next = number + 1
		}
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("save game: %w", err)
	}

	name := prefix + strconv.Itoa(next)
	if err := os.WriteFile(store.path(name), data, FilePermissions); err != nil {
		return "", fmt.Errorf("save game: %w", err)
	}

	logrus.WithField("path", store.path(name)).Debug("saved game record")
	return name, nil
}

func (store *Store) Load(name string) (Record, error) {
	var record Record

	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return record, fmt.Errorf("load game %q: %w", name, ErrInvalidName)
	}

	data, err := os.ReadFile(store.path(name))
	if err != nil {
		return record, fmt.Errorf("load game: %w", err)
	}

	if err := yaml.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("load game %s: %w", name, err)
	}

	return record, nil
}
