// Package scenariofile loads scenario documents from disk.
//
// A document bundles up to three blocks: the scenario parameters, the base
// cost model and the deployment context. HCL is the primary authoring
// format; YAML and JSON documents with the same shape are accepted for
// interchange with other tools. Loaded scenarios are validated before they
// are returned, so a document that parses is also safe to compute.
package scenariofile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"datacenter-tco/core/scenario"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// Document is one parsed scenario file. Absent blocks stay nil.
type Document struct {
	// Scenario holds the scenario parameters block
	Scenario *types.ScenarioParameters `json:"scenario,omitempty" yaml:"scenario,omitempty"`

	// Base holds the base cost block
	Base *types.BaseTCOInput `json:"base_costs,omitempty" yaml:"base_costs,omitempty"`

	// Context holds the deployment context block
	Context *types.ComputationContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// hclDocument mirrors Document for gohcl decoding.
type hclDocument struct {
	Scenario *types.ScenarioParameters `hcl:"scenario,block"`
	Base     *types.BaseTCOInput       `hcl:"base_costs,block"`
	Context  *types.ComputationContext `hcl:"context,block"`
}

// Load reads and parses a document, dispatching on the file extension.
// Supported extensions: .hcl, .tco, .yaml, .yml, .json.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Store(fmt.Sprintf("failed to read scenario file %s", path), err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".tco":
		return ParseHCL(src, path)
	case ".yaml", ".yml":
		return ParseYAML(src)
	case ".json":
		return ParseJSON(src)
	default:
		return nil, errors.Inputf("unsupported scenario file extension: %q (use .hcl, .tco, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// LoadScenario loads a document and requires it to carry a scenario block.
func LoadScenario(path string) (types.ScenarioParameters, error) {
	document, err := Load(path)
	if err != nil {
		return types.ScenarioParameters{}, err
	}
	if document.Scenario == nil {
		return types.ScenarioParameters{}, errors.Inputf("scenario file %s has no scenario block", path)
	}
	return *document.Scenario, nil
}

// ParseHCL parses an HCL document. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse HCL scenario file", diags)
	}

	var decoded hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to decode HCL scenario file", diags)
	}

	document := &Document{
		Scenario: decoded.Scenario,
		Base:     decoded.Base,
		Context:  decoded.Context,
	}
	return finish(document)
}

// ParseYAML parses a YAML document.
func ParseYAML(src []byte) (*Document, error) {
	var document Document
	if err := yaml.Unmarshal(src, &document); err != nil {
		return nil, errors.Parsing("failed to parse YAML scenario file", err)
	}
	return finish(&document)
}

// ParseJSON parses a JSON document.
func ParseJSON(src []byte) (*Document, error) {
	var document Document
	if err := json.Unmarshal(src, &document); err != nil {
		return nil, errors.Parsing("failed to parse JSON scenario file", err)
	}
	return finish(&document)
}

// finish assigns a fresh id to scenarios authored without one and
// validates the scenario block.
func finish(document *Document) (*Document, error) {
	if document.Scenario != nil {
		if document.Scenario.ID == "" {
			document.Scenario.ID = uuid.NewString()
		}
		if err := scenario.Validate(*document.Scenario); err != nil {
			return nil, err
		}
	}
	return document, nil
}
