// Package store persists the todo collection as a single JSON document.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tasklite/internal/domain"

	"github.com/rs/zerolog/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/singleflight"
)

// TodoStore provides whole-collection persistence. There is no
// incremental mode: Load returns everything, Save rewrites everything.
type TodoStore interface {
	Load(ctx context.Context) ([]domain.Todo, error)
	Save(ctx context.Context, items []domain.Todo) error
	Update(ctx context.Context, apply func([]domain.Todo) []domain.Todo) error
}

//go:embed schema.json
var schemaJSON string

var fileSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("todos.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("todos.schema.json")
}

// NextID returns one more than the greatest id in items, or 1 when the
// collection is empty or holds only ids below 1 (possible in a
// hand-edited file; numbering restarts at 1 rather than going further
// negative). Soft-deleted records count: their ids are still taken.
func NextID(items []domain.Todo) int {
	max := 0
	for i := range items {
		if items[i].ID > max {
			max = items[i].ID
		}
	}
	return max + 1
}

// FileStore implements TodoStore over one JSON file.
//
// Mutating cycles are serialized behind mu so that two concurrent
// requests cannot load the same snapshot and silently overwrite each
// other's save. Readers share the lock; concurrent identical loads
// collapse into one disk read through sf.
type FileStore struct {
	path string
	mu   sync.RWMutex
	sf   singleflight.Group
}

// NewFileStore returns a FileStore persisting to path. The file does not
// have to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the whole collection. A missing file is an empty
// collection, and so is a file whose content does not validate as a
// record list: read and parse failures are swallowed, a warning log
// line is their only trace. The returned slice is never nil.
func (s *FileStore) Load(ctx context.Context) ([]domain.Todo, error) {
	v, err, _ := s.sf.Do("load", func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.read(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Todo), nil
}

// Save atomically replaces the data file with the full collection: the
// document is written to a temp file in the same directory and renamed
// over the destination, so a reader never observes a partial write.
func (s *FileStore) Save(ctx context.Context, items []domain.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(items)
}

// Update runs one full load→mutate→save cycle under the store lock.
// Handlers use it for every mutating route; apply receives the loaded
// collection and returns the collection to persist.
func (s *FileStore) Update(ctx context.Context, apply func([]domain.Todo) []domain.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(apply(s.read()))
}

func (s *FileStore) read() []domain.Todo {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", s.path).Msg("data file unreadable, treating as empty")
		}
		return []domain.Todo{}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("data file is not valid JSON, treating as empty")
		return []domain.Todo{}
	}
	if err := fileSchema.Validate(doc); err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("data file does not match the record schema, treating as empty")
		return []domain.Todo{}
	}

	var items []domain.Todo
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("data file undecodable, treating as empty")
		return []domain.Todo{}
	}
	if items == nil {
		items = []domain.Todo{}
	}
	return items
}

func (s *FileStore) write(items []domain.Todo) error {
	if items == nil {
		items = []domain.Todo{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".todos-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
