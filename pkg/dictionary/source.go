package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource loads supplemental attribute definitions from local files
// (YAML or JSON) and merges them over the standard table.
type FileSource struct {
	// Path specifies a single file path to load
	Path string

	// Paths specifies multiple file paths to load and merge
	Paths []string

	// Format specifies the file format ("yaml", "json", or "auto")
	Format string
}

type fileFormat struct {
	Attributes []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}

// Load loads attribute definitions from the configured file(s) into dict.
func (fs *FileSource) Load(dict *Dictionary) error {
	var filePaths []string

	if fs.Path != "" {
		filePaths = append(filePaths, fs.Path)
	}

	if len(fs.Paths) > 0 {
		filePaths = append(filePaths, fs.Paths...)
	}

	if len(filePaths) == 0 {
		return fmt.Errorf("no files specified to load")
	}

	for _, path := range filePaths {
		attrs, err := fs.loadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		if err := dict.AddAttributes(attrs); err != nil {
			return fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	return nil
}

func (fs *FileSource) loadFile(path string) ([]*AttributeDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var content fileFormat

	switch fs.detectFormat(path) {
	case "json":
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	for _, attr := range content.Attributes {
		if attr.Name == "" {
			return nil, fmt.Errorf("attribute %d has no name", attr.ID)
		}
		if attr.DataType == "" {
			return nil, fmt.Errorf("attribute %q has no data type", attr.Name)
		}
	}

	return content.Attributes, nil
}

func (fs *FileSource) detectFormat(path string) string {
	if fs.Format != "" && fs.Format != "auto" {
		return fs.Format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
