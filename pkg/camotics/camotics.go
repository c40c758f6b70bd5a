// Package camotics builds Camotics simulation project documents for a
// program, so generated G-code can be previewed before it touches
// stock.
package camotics

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/program"
	"github.com/chazu/kerf/pkg/tool"
)

// Shape is a Camotics tool shape name.
type Shape string

const (
	Cylindrical Shape = "cylindrical"
	Ballnose    Shape = "ballnose"
	Conical     Shape = "conical"
)

// Tool is one entry in the project tool table.
type Tool struct {
	Units    string  `json:"units"`
	Shape    Shape   `json:"shape"`
	Length   float64 `json:"length"`
	Diameter float64 `json:"diameter"`
	Angle    float64 `json:"angle,omitempty"`
}

// Workpiece describes the stock to simulate against.
type Workpiece struct {
	Automatic bool        `json:"automatic"`
	Margin    float64     `json:"margin"`
	Bounds    geom.Bounds `json:"bounds"`
}

// Project is a Camotics project document.
type Project struct {
	Units          string          `json:"units"`
	ResolutionMode string          `json:"resolution-mode"`
	Resolution     float64         `json:"resolution"`
	Tools          map[string]Tool `json:"tools"`
	Workpiece      Workpiece       `json:"workpiece"`
	Files          []string        `json:"files"`
}

func shapeOf(t tool.Tool) Shape {
	switch t.Shape {
	case tool.Ballnose:
		return Ballnose
	case tool.Conical:
		return Conical
	default:
		return Cylindrical
	}
}

// FromProgram builds the simulation project for a program. Resolution
// is the simulation voxel size in the program units; tool numbers
// match the program's G-code tool numbers.
func FromProgram(p *program.Program, resolution float64) (Project, error) {
	bounds, err := p.Bounds()
	if err != nil {
		return Project{}, fmt.Errorf("project bounds: %w", err)
	}

	tools := map[string]Tool{}
	for i, t := range p.Tools() {
		tools[strconv.Itoa(i+1)] = Tool{
			Units:    t.Units.Name(),
			Shape:    shapeOf(t),
			Length:   geom.Round(t.Length),
			Diameter: geom.Round(t.Diameter),
			Angle:    t.Angle,
		}
	}

	return Project{
		Units:          p.Units().Name(),
		ResolutionMode: "manual",
		Resolution:     resolution,
		Tools:          tools,
		Workpiece: Workpiece{
			Automatic: false,
			Margin:    0,
			Bounds:    bounds,
		},
		Files: []string{p.Name() + ".gcode"},
	}, nil
}

// ToJSON serializes the project document.
func (p Project) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize project: %w", err)
	}
	return out, nil
}
