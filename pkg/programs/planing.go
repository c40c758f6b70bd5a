// Package programs holds ready-made program templates for common
// shop jobs.
package programs

import (
	"github.com/chazu/kerf/pkg/cuts"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/program"
	"github.com/chazu/kerf/pkg/tool"
)

// PlaningMeasurements describes the stock face to plane. Width runs
// along x and length along y. Height is the unplaned top surface and
// ZEnd the finished one, both relative to the machine's z zero;
// ZMaxStep is the depth removed per pass.
type PlaningMeasurements struct {
	Width    float64
	Length   float64
	Height   float64
	ZEnd     float64
	ZMaxStep float64
}

// DefaultPlaningMeasurements returns shop defaults for a small board,
// expressed in the given units.
func DefaultPlaningMeasurements(units geom.Units) PlaningMeasurements {
	return PlaningMeasurements{
		Width:    units.FromMM(50),
		Length:   units.FromMM(100),
		Height:   units.FromMM(2),
		ZEnd:     units.DefaultZEnd(),
		ZMaxStep: units.DefaultZMaxStep(),
	}
}

// Planing builds a program that faces the top of a board. The raster
// area overhangs the stock by a tool diameter on every side so the
// cutter clears the edges completely.
func Planing(t tool.Tool, m PlaningMeasurements) (*program.Program, error) {
	units := t.Units
	p := program.New(units, units.FromMM(10), units.FromMM(50))
	p.SetName("planing")

	pad := t.Diameter
	err := p.Extend(t, func(c *program.Context) error {
		return c.AppendCut(cuts.Area{
			Corner:   geom.V3(-pad, -pad, m.Height),
			Size:     geom.V2(m.Width+2*pad, m.Length+2*pad),
			EndZ:     m.ZEnd,
			MaxStepZ: m.ZMaxStep,
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
