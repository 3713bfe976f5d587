package projectile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateIsolatesRejectedScenarios(t *testing.T) {
	results := Simulate([]Scenario{
		{Speed: 20, Angle: 45, Gravity: 9.8},
		{Speed: 20, Angle: 45, Gravity: 0},
		{Label: "steep", Speed: 15, Angle: 80, Gravity: 32.2},
	}, US)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.InDelta(t, 40.77, results[0].Range, 0.1)
	assert.Equal(t, 1, results[0].Index)

	assert.ErrorIs(t, results[1].Err, ErrInvalidInput)
	assert.Zero(t, results[1].Range)
	assert.Empty(t, results[1].Trajectory)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, "steep", results[2].Name())
	assert.Equal(t, 3, results[2].Index)
	for _, r := range results {
		assert.Equal(t, US, r.Units)
	}
}

func TestResultSummary(t *testing.T) {
	r := Simulate([]Scenario{{Speed: 20, Angle: 45, Gravity: 9.8}}, SI)[0]
	assert.Equal(t, "Projectile 1 - Time of Flight: 2.886 s, Max Height: 10.204 m, Range: 40.816 m", r.Summary())

	r.Units = US
	assert.Contains(t, r.Summary(), "Range: 40.816 ft")

	bad := Simulate([]Scenario{{Speed: 1, Angle: 10, Gravity: -1}}, SI)[0]
	assert.Contains(t, bad.Summary(), "Projectile 1 - rejected: invalid input")
}

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario("a", " 20", "45", "9.8 ")
	require.NoError(t, err)
	if diff := cmp.Diff(Scenario{Label: "a", Speed: 20, Angle: 45, Gravity: 9.8}, s); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseScenario("b", "fast", "45", "9.8")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "speed")

	_, err = ParseTriple("c", "20,45")
	require.ErrorIs(t, err, ErrInvalidInput)

	s, err = ParseTriple("d", "10,30,1.62")
	require.NoError(t, err)
	assert.Equal(t, 1.62, s.Gravity)
}

const batchSrc = `
units = "us"

projectile "lob" {
  speed   = 20
  angle   = 45
  gravity = 9.8
}

projectile "quoted" {
  speed   = "15"
  angle   = 30
  gravity = 32.2
}

projectile "broken" {
  speed   = "fast"
  angle   = 30
  gravity = 32.2
}

projectile "grounded" {
  speed   = 10
  angle   = 30
  gravity = 0
}
`

func TestDecodeBatch(t *testing.T) {
	b, err := Decode([]byte(batchSrc), "batch.hcl")
	require.NoError(t, err)

	assert.Equal(t, US, b.Units)
	want := []Scenario{
		{Label: "lob", Speed: 20, Angle: 45, Gravity: 9.8},
		{Label: "quoted", Speed: 15, Angle: 30, Gravity: 32.2},
		{Label: "grounded", Speed: 10, Angle: 30, Gravity: 0},
	}
	if diff := cmp.Diff(want, b.Scenarios); diff != "" {
		t.Fatalf("scenarios mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, b.Rejected, 1)
	assert.Equal(t, "broken", b.Rejected[0].Label)
	assert.ErrorIs(t, b.Rejected[0].Err, ErrInvalidInput)

	// Zero gravity parses but is rejected when solved.
	results := Simulate(b.Scenarios, b.Units)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.ErrorIs(t, results[2].Err, ErrInvalidInput)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`projectile "x" {`), "bad.hcl")
	assert.Error(t, err)

	_, err = Decode([]byte(`units = "cubits"`), "units.hcl")
	assert.ErrorIs(t, err, ErrInvalidInput)

	b, err := Decode([]byte("projectile \"ok\" {\n  speed = 1\n  angle = 30\n  gravity = 9.8\n}\nprojectile \"x\" {\n  speed = 1\n}\n"), "missing.hcl")
	require.NoError(t, err)
	require.Len(t, b.Scenarios, 1)
	assert.Equal(t, "ok", b.Scenarios[0].Label)
	require.Len(t, b.Rejected, 1)
	assert.Equal(t, "x", b.Rejected[0].Label)
	assert.ErrorIs(t, b.Rejected[0].Err, ErrInvalidInput)
	assert.Contains(t, b.Rejected[0].Err.Error(), "angle is required")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots.hcl")
	require.NoError(t, os.WriteFile(path, []byte(batchSrc), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, b.Scenarios, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}
