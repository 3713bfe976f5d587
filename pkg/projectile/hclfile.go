package projectile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Batch is a set of scenarios read from an HCL file.
type Batch struct {
	Units     UnitSystem
	Scenarios []Scenario
	// Rejected lists projectile blocks whose values could not be read as numbers.
	Rejected []Rejection
}

// Rejection records a projectile block dropped while loading.
type Rejection struct {
	Label string
	Err   error
}

type batchFile struct {
	Units       string            `hcl:"units,optional"`
	Projectiles []projectileBlock `hcl:"projectile,block"`
}

type projectileBlock struct {
	Name    string         `hcl:"name,label"`
	Speed   hcl.Expression `hcl:"speed"`
	Angle   hcl.Expression `hcl:"angle"`
	Gravity hcl.Expression `hcl:"gravity"`
}

// LoadFile parses a scenario file from disk.
func LoadFile(path string) (*Batch, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	return decode(file, path)
}

// Decode parses scenario file contents. filename is used in diagnostics.
func Decode(src []byte, filename string) (*Batch, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Batch, error) {
	var raw batchFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	b := &Batch{Units: SI}
	if raw.Units != "" {
		u, err := ParseUnitSystem(raw.Units)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
		b.Units = u
	}

	for _, blk := range raw.Projectiles {
		s, err := blk.scenario()
		if err != nil {
			b.Rejected = append(b.Rejected, Rejection{Label: blk.Name, Err: err})
			continue
		}
		b.Scenarios = append(b.Scenarios, s)
	}
	return b, nil
}

func (blk projectileBlock) scenario() (Scenario, error) {
	s := Scenario{Label: blk.Name}
	var err error
	if s.Speed, err = number("speed", blk.Speed); err != nil {
		return Scenario{}, err
	}
	if s.Angle, err = number("angle", blk.Angle); err != nil {
		return Scenario{}, err
	}
	if s.Gravity, err = number("gravity", blk.Gravity); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// number evaluates a constant expression and converts it to float64.
// Numeric strings such as "9.8" are accepted.
func number(name string, expr hcl.Expression) (float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: %s: %s", ErrInvalidInput, name, diags.Error())
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidInput, name)
	}
	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidInput, name, err)
	}
	return f, nil
}
