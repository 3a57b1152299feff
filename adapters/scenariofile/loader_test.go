// Package scenariofile - Loader tests
package scenariofile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacenter-tco/core/scenario"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

const hclDocumentFull = `
scenario {
  name       = "EU Expansion"
  region     = "EU"
  regulatory = "high"

  time {
    year            = 2027
    escalation_rate = 0.025
    shock_factor    = 1.5
    shock_enabled   = true
  }

  workload {
    class          = "high"
    ai_accelerated = true
  }

  security {
    annual_investment          = 250000
    siem_per_node              = 120
    iam_per_user               = 45
    encryption_per_tb          = 8.5
    incident_response_retainer = 42000
    user_count                 = 350
  }

  risk {
    base_incident_probability = 0.15
    average_impact_cost       = 2000000
    max_security_reduction    = 0.6
  }
}

base_costs {
  land               = 500000
  servers            = 2000000
  storage            = 600000
  network            = 400000
  power_distribution = 800000
  energy             = 1200000
  software           = 300000
  labor              = 1500000
}

context {
  node_count       = 400
  total_storage_tb = 1200
}
`

const yamlDocument = `
scenario:
  name: "YAML Scenario"
  region: "APAC"
  regulatory: "low"
  time:
    year: 2026
    escalation_rate: 0.03
  workload:
    class: "low"
  security:
    annual_investment: 100000
    siem_per_node: 100
    iam_per_user: 40
    encryption_per_tb: 8
    incident_response_retainer: 30000
    user_count: 200
  risk:
    base_incident_probability: 0.1
    average_impact_cost: 1000000
    max_security_reduction: 0.5
base_costs:
  land: 100000
  servers: 900000
  storage: 250000
  network: 150000
  power_distribution: 300000
  energy: 500000
  software: 120000
  labor: 700000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHCLDocument(t *testing.T) {
	document, err := Load(writeFile(t, "expansion.hcl", hclDocumentFull))
	require.NoError(t, err)

	require.NotNil(t, document.Scenario)
	require.NotNil(t, document.Base)
	require.NotNil(t, document.Context)

	t.Run("scenario block", func(t *testing.T) {
		s := document.Scenario
		assert.Equal(t, "EU Expansion", s.Name)
		assert.Equal(t, types.RegionEU, s.Region)
		assert.Equal(t, types.RegulatoryHigh, s.Regulatory)
		assert.Equal(t, 2027, s.Time.Year)
		assert.Equal(t, 0.025, s.Time.EscalationRate)
		assert.True(t, s.Time.ShockEnabled)
		assert.Equal(t, types.WorkloadHigh, s.Workload.Class)
		assert.True(t, s.Workload.AIAccelerated)
		assert.Equal(t, 350, s.Security.UserCount)
		assert.Equal(t, 0.6, s.Risk.MaxSecurityReduction)
	})

	t.Run("base costs block", func(t *testing.T) {
		assert.Equal(t, 2_000_000.0, document.Base.Servers)
		assert.Equal(t, 7_300_000.0, document.Base.Total())
	})

	t.Run("context block", func(t *testing.T) {
		assert.Equal(t, 400, document.Context.NodeCount)
		assert.Equal(t, 1_200.0, document.Context.TotalStorageTB)
	})

	t.Run("generated id", func(t *testing.T) {
		assert.NotEmpty(t, document.Scenario.ID)
	})
}

func TestLoadTcoExtension(t *testing.T) {
	document, err := Load(writeFile(t, "expansion.tco", hclDocumentFull))
	require.NoError(t, err)
	assert.NotNil(t, document.Scenario)
}

func TestLoadYAMLDocument(t *testing.T) {
	document, err := Load(writeFile(t, "scenario.yaml", yamlDocument))
	require.NoError(t, err)

	require.NotNil(t, document.Scenario)
	require.NotNil(t, document.Base)
	assert.Nil(t, document.Context)

	assert.Equal(t, types.RegionAPAC, document.Scenario.Region)
	assert.Equal(t, types.WorkloadLow, document.Scenario.Workload.Class)
	assert.False(t, document.Scenario.Time.ShockEnabled)
	assert.NotEmpty(t, document.Scenario.ID)
	assert.Equal(t, 3_020_000.0, document.Base.Total())
}

func TestLoadJSONDocument(t *testing.T) {
	params, err := scenario.NewBuilder("JSON Scenario").Build()
	require.NoError(t, err)
	base := types.BaseTCOInput{Land: 1, Servers: 2, Storage: 3, Network: 4, PowerDistribution: 5, Energy: 6, Software: 7, Labor: 8}
	payload, err := json.Marshal(Document{Scenario: &params, Base: &base})
	require.NoError(t, err)

	document, err := Load(writeFile(t, "scenario.json", string(payload)))
	require.NoError(t, err)

	require.NotNil(t, document.Scenario)
	assert.Equal(t, params.ID, document.Scenario.ID)
	assert.Equal(t, params.Name, document.Scenario.Name)
	assert.Equal(t, 36.0, document.Base.Total())
}

func TestLoadScenarioRequiresBlock(t *testing.T) {
	path := writeFile(t, "base-only.yaml", "base_costs:\n  land: 100\n")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "scenario.toml", "[scenario]\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStore))
}

func TestParseHCLSyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte("scenario {\n  name = \n}"), "broken.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseYAMLSyntaxError(t *testing.T) {
	_, err := ParseYAML([]byte("scenario: ["))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestLoadValidatesScenario(t *testing.T) {
	bad := `
scenario:
  name: "Bad"
  region: "MOON"
  regulatory: "medium"
  time:
    year: 2025
  workload:
    class: "medium"
  security:
    annual_investment: 0
    siem_per_node: 0
    iam_per_user: 0
    encryption_per_tb: 0
    incident_response_retainer: 0
    user_count: 0
  risk:
    base_incident_probability: 0
    average_impact_cost: 0
    max_security_reduction: 0
`
	_, err := Load(writeFile(t, "bad.yaml", bad))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "region")
}
