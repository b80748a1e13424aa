package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// fileSchema is the structural schema every bank file must
// satisfy.
const fileSchema = `{
  "type": "object",
  "required": ["version", "contracts"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "name": {"type": "string"},
    "metadata": {"type": "object"},
    "contracts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "target", "parameters"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "target": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "parameters": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name"],
              "additionalProperties": false,
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "validValue": true,
                "assertions": {
                  "oneOf": [
                    {"type": "array", "items": {"type": "string", "minLength": 1}},
                    {"type": "string"}
                  ]
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource("bank.json", strings.NewReader(fileSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile("bank.json")
	})
	return compiledSchema, schemaErr
}

// ValidationError represents a validation issue found in a bank
// file.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("contracts[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Format identifies the encoding of a bank file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf returns the format implied by the file extension and
// whether the extension is a bank extension at all.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return FormatJSON, false
	}
}

// normalize converts data to canonical JSON so that both formats
// share one schema and one decoder.
func normalize(data []byte, format Format) ([]byte, error) {
	if format == FormatJSON {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return out, nil
}

// Validate checks data against the bank schema and the
// cross-entry rules (unique contract IDs, unique parameter
// names) and returns every problem found.
func Validate(data []byte, format Format) []ValidationError {
	normalized, err := normalize(data, format)
	if err != nil {
		return []ValidationError{{Field: "file", Message: err.Error(), Index: -1}}
	}

	schema, err := bankSchema()
	if err != nil {
		return []ValidationError{{Field: "schema", Message: err.Error(), Index: -1}}
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return []ValidationError{{Field: "json", Message: err.Error(), Index: -1}}
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return schemaErrors(verr)
		}
		return []ValidationError{{Field: "schema", Message: err.Error(), Index: -1}}
	}

	var file File
	if err := json.Unmarshal(normalized, &file); err != nil {
		return []ValidationError{{Field: "json", Message: err.Error(), Index: -1}}
	}
	return semanticErrors(&file)
}

// ValidateFile validates the bank file at path.
func ValidateFile(path string) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{Field: "file", Message: err.Error(), Index: -1}}
	}
	format, _ := FormatOf(path)
	return Validate(data, format)
}

func schemaErrors(root *jsonschema.ValidationError) []ValidationError {
	var out []ValidationError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := e.InstanceLocation
			if field == "" {
				field = "/"
			}
			out = append(out, ValidationError{
				Field: field, Message: e.Message, Index: -1,
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(root)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})
	return out
}

func semanticErrors(file *File) []ValidationError {
	var errs []ValidationError

	ids := make(map[string]bool)
	for i, c := range file.Contracts {
		if ids[c.ID] {
			errs = append(errs, ValidationError{
				Field: "id", Message: fmt.Sprintf("duplicate ID: %s", c.ID), Index: i,
			})
		}
		ids[c.ID] = true

		names := make(map[string]bool)
		for _, p := range c.Parameters {
			if names[p.Name] {
				errs = append(errs, ValidationError{
					Field:   "parameters",
					Message: fmt.Sprintf("duplicate parameter: %s", p.Name),
					Index:   i,
				})
			}
			names[p.Name] = true
		}
	}
	return errs
}
