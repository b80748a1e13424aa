package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Bank manages collections of contracts loaded from files.
type Bank struct {
	mu        sync.RWMutex
	contracts map[string]*Contract
	sources   []string
}

// New creates a new empty Bank.
func New() *Bank {
	return &Bank{
		contracts: make(map[string]*Contract),
	}
}

// LoadFile loads contracts from a JSON or YAML file. The file
// is validated first; the first problem found is returned.
func (b *Bank) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file %s: %w", path, err)
	}

	format, _ := FormatOf(path)
	return b.load(data, format, path)
}

// LoadBytes loads contracts from data in the given format.
// source is used in error messages and Sources.
func (b *Bank) LoadBytes(data []byte, format Format, source string) error {
	return b.load(data, format, source)
}

func (b *Bank) load(data []byte, format Format, source string) error {
	if errs := Validate(data, format); len(errs) > 0 {
		return fmt.Errorf("invalid bank file %s: %w", source, errs[0])
	}

	normalized, err := normalize(data, format)
	if err != nil {
		return fmt.Errorf("parse bank file %s: %w", source, err)
	}

	var file File
	if err := json.Unmarshal(normalized, &file); err != nil {
		return fmt.Errorf("parse bank file %s: %w", source, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range file.Contracts {
		if _, exists := b.contracts[file.Contracts[i].ID]; exists {
			return fmt.Errorf(
				"contract %s from %s already loaded",
				file.Contracts[i].ID, source,
			)
		}
	}
	for i := range file.Contracts {
		c := &file.Contracts[i]
		b.contracts[c.ID] = c
	}
	b.sources = append(b.sources, source)
	return nil
}

// LoadDir loads all .json, .yaml and .yml files from a
// directory. It does not recurse into subdirectories.
func (b *Bank) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read bank directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatOf(entry.Name()); !ok {
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadGlob loads every bank file matching pattern. Patterns may
// use ** to match any number of directories, for example
// "contracts/**/*.yaml". Matches without a bank extension are
// skipped. It returns the number of files loaded.
func (b *Bank) LoadGlob(pattern string) (int, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return 0, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	loaded := 0
	for _, m := range matches {
		if _, ok := FormatOf(m); !ok {
			continue
		}
		if info, err := os.Stat(m); err != nil || info.IsDir() {
			continue
		}
		if err := b.LoadFile(m); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// Get retrieves a contract by ID.
func (b *Bank) Get(id string) (*Contract, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.contracts[id]
	return c, ok
}

// All returns all loaded contracts sorted by ID.
func (b *Bank) All() []*Contract {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]*Contract, 0, len(b.contracts))
	for _, c := range b.contracts {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// ByTag returns contracts carrying tag, sorted by ID.
func (b *Bank) ByTag(tag string) []*Contract {
	var result []*Contract
	for _, c := range b.All() {
		for _, t := range c.Tags {
			if strings.EqualFold(t, tag) {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// Count returns the number of loaded contracts.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.contracts)
}

// Sources returns the list of loaded sources.
func (b *Bank) Sources() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]string, len(b.sources))
	copy(result, b.sources)
	return result
}
