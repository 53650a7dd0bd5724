package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

//go:embed billboards.yaml
var embeddedCatalog []byte

type document struct {
	Billboards []billboard.Billboard `yaml:"billboards"`
}

// LoadEmbedded builds the catalog shipped inside the binary.
func LoadEmbedded() (*MemoryCatalog, error) {
	return Parse(embeddedCatalog)
}

// LoadFile builds a catalog from a YAML file on disk.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*MemoryCatalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Billboards) == 0 {
		return nil, fmt.Errorf("parse catalog: no billboards defined")
	}
	return NewMemoryCatalog(doc.Billboards)
}
