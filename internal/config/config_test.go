package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
battery_capacity_kwh: 100
min_soc_kwh: 10
initial_soc_kwh: 100
final_soc_required_kwh: 20
departure_hour: 8
cruise_speed: 10
base_consumption_per_unit: 2
soc_step_kwh: 10
stations:
  - id: origin
    dist_to_next: 20
  - id: terminus
`

const scenarioWithStationsFileYAML = `
stations_file: stations.yaml
battery_capacity_kwh: 100
min_soc_kwh: 10
initial_soc_kwh: 100
final_soc_required_kwh: 20
departure_hour: 8
cruise_speed: 10
base_consumption_per_unit: 2
soc_step_kwh: 10
stations:
  - id: terminus
`

const stationsFileYAML = `
stations:
  - id: origin
    dist_to_next: 20
    swap_allowed: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadValidatesIntoScenario(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scenario.yaml", scenarioYAML)

	s, err := Load(p)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.Stations, 2)
	assert.Equal(t, "origin", s.Stations[0].ID)
	assert.InDelta(t, 20.0, s.Stations[0].DistToNext, 1e-9)
}

func TestLoadUncheckedDefaultsTimeStepHours(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scenario.yaml", scenarioYAML)

	c, err := LoadUnchecked(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, c.TimeStepHours, 1e-9)
}

func TestLoadMergesStationsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stations.yaml", stationsFileYAML)
	p := writeFile(t, dir, "scenario.yaml", scenarioWithStationsFileYAML)

	c, err := LoadUnchecked(p)
	require.NoError(t, err)
	require.Len(t, c.Stations, 2)
	assert.Equal(t, "origin", c.Stations[0].ID)
	assert.True(t, c.Stations[0].SwapAllowed)
	assert.Equal(t, "terminus", c.Stations[1].ID)
}

func TestLoadPropagatesValidationError(t *testing.T) {
	dir := t.TempDir()
	bad := `
battery_capacity_kwh: 0
stations:
  - id: origin
  - id: terminus
`
	p := writeFile(t, dir, "scenario.yaml", bad)
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
