package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/estatedesk/optionkit/pkg/options"
)

// Store holds the normalized option lists keyed by field.
type Store struct {
	entries map[string]Entry
}

// Entry is a single catalog field.
type Entry struct {
	Key     string       `json:"key" yaml:"key"`
	Source  string       `json:"source" yaml:"source"`
	Raw     any          `json:"raw" yaml:"raw"`
	Options options.List `json:"options" yaml:"options"`
}

// LoadOption configures LoadFS.
type LoadOption func(*loadConfig)

type loadConfig struct {
	normalizer *options.Normalizer
	logger     *zap.Logger
}

// WithNormalizer normalizes entries with n instead of the package default.
func WithNormalizer(n *options.Normalizer) LoadOption {
	return func(cfg *loadConfig) {
		cfg.normalizer = n
	}
}

// WithLogger reports loaded files to logger at debug level.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(cfg *loadConfig) {
		cfg.logger = logger
	}
}

// LoadFS walks fsys and parses every JSON/YAML catalog file. When fsys is nil
// or holds no catalog files, the returned store is empty.
func LoadFS(fsys fs.FS, fns ...LoadOption) (*Store, error) {
	cfg := loadConfig{}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	if cfg.normalizer == nil {
		cfg.normalizer = options.NewNormalizer(options.WithLogger(cfg.logger))
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store := &Store{entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawKey, raw := range doc.Fields {
			key := strings.TrimSpace(rawKey)
			if key == "" {
				return fmt.Errorf("catalog: file %s defines an empty field key", path)
			}
			if existing, exists := store.entries[key]; exists {
				return fmt.Errorf("catalog: duplicate field %q (files %s and %s)", key, existing.Source, path)
			}
			store.entries[key] = Entry{
				Key:     key,
				Source:  path,
				Raw:     raw,
				Options: cfg.normalizer.Normalize(raw),
			}
		}

		cfg.logger.Debug("catalog: loaded file",
			zap.String("path", path),
			zap.Int("fields", len(doc.Fields)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Options returns a copy of the normalized options for key.
func (s *Store) Options(key string) (options.List, bool) {
	if s == nil {
		return nil, false
	}
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return entry.Options.Clone(), true
}

// Raw returns the unnormalized value for key.
func (s *Store) Raw(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return entry.Raw, true
}

// Entry returns the full record for key.
func (s *Store) Entry(key string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[key]
	if ok {
		entry.Options = entry.Options.Clone()
	}
	return entry, ok
}

// Keys returns the field keys in sorted order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of fields.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s.Len() == 0
}

type documentFile struct {
	Fields map[string]any `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
