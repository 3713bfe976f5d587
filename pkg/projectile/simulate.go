package projectile

import (
	"fmt"
	"strconv"
	"strings"
)

// Scenario is one user-entered launch: speed, angle in degrees, gravity.
type Scenario struct {
	Label   string
	Speed   float64
	Angle   float64
	Gravity float64
}

// Result is the outcome of one scenario. Err is set when the scenario was
// rejected, in which case the numeric fields are zero.
type Result struct {
	Index    int
	Scenario Scenario
	Units    UnitSystem

	TimeOfFlight float64
	MaxHeight    float64
	Range        float64
	Trajectory   []Point

	Err error
}

// ParseScenario converts text fields into a Scenario. Non-numeric values
// are reported as ErrInvalidInput.
func ParseScenario(label, speed, angle, gravity string) (Scenario, error) {
	s := Scenario{Label: label}
	var err error
	if s.Speed, err = parseNumber("speed", speed); err != nil {
		return Scenario{}, err
	}
	if s.Angle, err = parseNumber("angle", angle); err != nil {
		return Scenario{}, err
	}
	if s.Gravity, err = parseNumber("gravity", gravity); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func parseNumber(name, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, text)
	}
	return v, nil
}

// ParseTriple parses "speed,angle,gravity".
func ParseTriple(label, text string) (Scenario, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Scenario{}, fmt.Errorf("%w: %q must be speed,angle,gravity", ErrInvalidInput, text)
	}
	return ParseScenario(label, parts[0], parts[1], parts[2])
}

// Solve evaluates one scenario.
func Solve(s Scenario) Result {
	r := Result{Scenario: s}
	p, err := New(s.Speed, s.Angle, s.Gravity)
	if err != nil {
		r.Err = err
		return r
	}
	r.TimeOfFlight = p.TimeOfFlight()
	r.MaxHeight = p.MaxHeight()
	r.Range = p.Range()
	r.Trajectory = p.Trajectory()
	return r
}

// Simulate solves every scenario independently. Results keep the input
// order and carry 1-based indices; a rejected scenario does not affect the
// rest. units only labels the results.
func Simulate(scenarios []Scenario, units UnitSystem) []Result {
	out := make([]Result, len(scenarios))
	for i, s := range scenarios {
		out[i] = Solve(s)
		out[i].Index = i + 1
		out[i].Units = units
	}
	return out
}

// Name returns the label, or "Projectile N" when the scenario has none.
func (r Result) Name() string {
	if r.Scenario.Label != "" {
		return r.Scenario.Label
	}
	return "Projectile " + strconv.Itoa(r.Index)
}

// Summary formats the result on one line using the result's unit labels.
func (r Result) Summary() string {
	units := r.Units
	if r.Err != nil {
		return fmt.Sprintf("%s - rejected: %v", r.Name(), r.Err)
	}
	return fmt.Sprintf("%s - Time of Flight: %s %s, Max Height: %s %s, Range: %s %s",
		r.Name(),
		formatFloat(r.TimeOfFlight), units.Time(),
		formatFloat(r.MaxHeight), units.Length(),
		formatFloat(r.Range), units.Length(),
	)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
