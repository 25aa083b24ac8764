package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name          string `yaml:"name"`
	Input         string `yaml:"input"`
	Want          string `yaml:"want"`
	WantError     bool   `yaml:"wantError"`
	ErrorContains string `yaml:"errorContains"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("../../testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	return scenarios
}

// TestScenarios runs every concrete evaluation scenario in
// testdata/scenarios.yaml end to end.
func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			got, err := evalString(t, sc.Input)
			if sc.WantError {
				require.Error(t, err)
				if sc.ErrorContains != "" {
					assert.Contains(t, err.Error(), sc.ErrorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sc.Want, got)
		})
	}
}
