package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyform/pkg/model"
)

var (
	defaultOnce sync.Once
	defaultDef  Definition
)

// Default returns the embedded survey definition.
func Default() Definition {
	defaultOnce.Do(func() {
		def, err := loadFiles(EmbeddedFS(), Definition{Fields: map[model.FieldName]FieldConfig{}})
		if err != nil {
			// The embedded definition ships with the package; failing to parse
			// it is a build defect.
			panic(err)
		}
		defaultDef = def
	})
	return defaultDef.Clone()
}

// LoadFS walks fsys and overlays every JSON/YAML definition file onto the
// embedded defaults. A nil fsys returns the defaults. Files may only describe
// base fields, and each field may be configured by at most one file.
func LoadFS(fsys fs.FS) (Definition, error) {
	if fsys == nil {
		return Default(), nil
	}
	return loadFiles(fsys, Default())
}

type documentFile struct {
	Title  string                 `json:"title" yaml:"title"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func loadFiles(fsys fs.FS, base Definition) (Definition, error) {
	def := base.Clone()
	if def.Fields == nil {
		def.Fields = make(map[model.FieldName]FieldConfig)
	}
	seen := make(map[model.FieldName]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if title := strings.TrimSpace(doc.Title); title != "" {
			def.Title = title
		}

		for key, cfg := range doc.Fields {
			name := model.FieldName(strings.TrimSpace(key))
			if name == "" {
				return fmt.Errorf("schema: file %s defines an empty field key", path)
			}
			if !model.IsBaseField(name) {
				return fmt.Errorf("schema: file %s configures unknown field %q", path, name)
			}
			if prev, exists := seen[name]; exists {
				return fmt.Errorf("schema: field %q configured by both %s and %s", name, prev, path)
			}
			if err := validateInput(cfg.Input); err != nil {
				return fmt.Errorf("schema: file %s field %q: %w", path, name, err)
			}
			seen[name] = path
			def.Fields[name] = overlay(def.Fields[name], cfg)
		}
		return nil
	})
	if err != nil {
		return Definition{}, err
	}
	return def, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}

func validateInput(kind InputKind) error {
	switch kind {
	case "", InputText, InputEmail, InputSelect, InputNumber, InputTextArea:
		return nil
	default:
		return fmt.Errorf("unsupported input kind %q", kind)
	}
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
