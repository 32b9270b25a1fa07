package factors

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"ecotrack/core/types"
	"ecotrack/internal/errors"
	"ecotrack/internal/logging"
)

// catalogFile is the on-disk factor catalog schema.
// Both native HCL and the JSON syntax are accepted; the extension
// decides which parser runs.
type catalogFile struct {
	Version    string          `hcl:"version,optional"`
	Categories []categoryBlock `hcl:"category,block"`
}

type categoryBlock struct {
	Name    string        `hcl:"name,label"`
	Factors []factorBlock `hcl:"factor,block"`
}

type factorBlock struct {
	Name  string  `hcl:"name,label"`
	Value float64 `hcl:"value"`
	Unit  string  `hcl:"unit,optional"`
}

// LoadFile loads a factor catalog from an .hcl or .json file
func LoadFile(path string) (*Table, error) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(path, ".json") {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse factor catalog", diags)
	}

	var catalog catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &catalog); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "failed to decode factor catalog", diags)
	}

	version := catalog.Version
	if version == "" {
		version = DefaultVersion
	}

	b := NewBuilder(version).WithSource(SourceFile)
	for _, cat := range catalog.Categories {
		for _, f := range cat.Factors {
			b.Add(types.Category(cat.Name), f.Name, f.Value, f.Unit)
		}
	}
	return b.Build(), nil
}

// LoadOrDefault loads the catalog at path, falling back to the
// embedded defaults when path is empty or the file does not exist.
// Parse errors are still surfaced: a present-but-broken catalog should
// fail startup rather than silently price against defaults.
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Warn("factor catalog not found, using embedded defaults",
			zap.String("path", path))
		return Default(), nil
	}
	return LoadFile(path)
}
