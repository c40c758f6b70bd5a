// Package project persists a program to disk as a G-code file plus a
// matching Camotics simulation project.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/kerf/pkg/camotics"
	"github.com/chazu/kerf/pkg/program"
)

// Write renders the program and writes <name>.gcode and
// <name>.camotics in the current working directory. Resolution is the
// simulation voxel size in the program units.
func Write(p *program.Program, resolution float64) error {
	return WriteTo(".", p, resolution)
}

// WriteTo is Write with an explicit target directory.
func WriteTo(dir string, p *program.Program, resolution float64) error {
	text, err := p.ToGCode()
	if err != nil {
		return fmt.Errorf("render g-code: %w", err)
	}
	proj, err := camotics.FromProgram(p, resolution)
	if err != nil {
		return err
	}
	doc, err := proj.ToJSON()
	if err != nil {
		return err
	}

	name := p.Name()
	gcodePath := filepath.Join(dir, name+".gcode")
	if err := os.WriteFile(gcodePath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", gcodePath, err)
	}
	projectPath := filepath.Join(dir, name+".camotics")
	if err := os.WriteFile(projectPath, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", projectPath, err)
	}
	return nil
}
