package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/kerf/pkg/cuts"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/program"
	"github.com/chazu/kerf/pkg/tool"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms kerf Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: set-name -> set_name
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a geom.Vector3.
type sexpVec3 struct {
	vec geom.Vector3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpTool wraps a tool.Tool so it can be returned from `tool` and
// consumed by `extend`.
type sexpTool struct {
	t tool.Tool
}

func (t *sexpTool) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(tool %s)", t.t)
}
func (t *sexpTool) Type() *zygo.RegisteredType { return nil }

// sexpCut wraps a cut so it can be passed between builtins.
type sexpCut struct {
	cut  cuts.Cut
	name string
}

func (c *sexpCut) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(cut %s)", c.name)
}
func (c *sexpCut) Type() *zygo.RegisteredType { return nil }

// sexpProgram wraps a Program reference.
type sexpProgram struct {
	p *program.Program
}

func (p *sexpProgram) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(program %q)", p.p.Name())
}
func (p *sexpProgram) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// float reads an optional keyword number into dst.
func (a kwArgs) float(name string, dst *float64) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_outer) and plain strings ("outer").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

func toUnits(s zygo.Sexp) (geom.Units, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected units keyword (:metric, :imperial): %w", err)
	}
	switch name {
	case "metric", "mm":
		return geom.Metric, nil
	case "imperial", "inch":
		return geom.Imperial, nil
	}
	return 0, fmt.Errorf("invalid units %q, expected metric or imperial", name)
}

func toDirection(s zygo.Sexp) (geom.Direction, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected direction keyword: %w", err)
	}
	switch name {
	case "clockwise", "cw":
		return geom.Clockwise, nil
	case "counterclockwise", "ccw":
		return geom.Counterclockwise, nil
	}
	return 0, fmt.Errorf("invalid direction %q, expected clockwise or counterclockwise", name)
}

func toCompensation(s zygo.Sexp) (geom.Compensation, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected compensation keyword: %w", err)
	}
	switch name {
	case "none":
		return geom.CompensationNone, nil
	case "inner":
		return geom.CompensationInner, nil
	case "outer":
		return geom.CompensationOuter, nil
	}
	return 0, fmt.Errorf("invalid compensation %q, expected none, inner or outer", name)
}

func toShape(s zygo.Sexp) (tool.Shape, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected shape keyword: %w", err)
	}
	switch name {
	case "cylindrical":
		return tool.Cylindrical, nil
	case "ballnose":
		return tool.Ballnose, nil
	case "conical":
		return tool.Conical, nil
	}
	return 0, fmt.Errorf("invalid shape %q, expected cylindrical, ballnose or conical", name)
}

func toVec3(s zygo.Sexp) (geom.Vector3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return geom.Vector3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toVec3List(s zygo.Sexp) ([]geom.Vector3, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Vector3, len(items))
	for i, item := range items {
		v, err := toVec3(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// evalState collects what the builtins produce during one evaluation.
type evalState struct {
	program *program.Program
}

// registerBuiltins installs the kerf DSL builtins into a zygomys
// environment. Source code must be preprocessed with preprocessSource()
// before evaluation so that :keyword tokens are converted to
// recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, state *evalState) {

	// -----------------------------------------------------------------------
	// (vec3 10 20 -1.5)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3: expected 3 numbers, got %d arguments", len(args))
		}
		var v geom.Vector3
		for i, dst := range []*float64{&v.X, &v.Y, &v.Z} {
			f, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			*dst = f
		}
		return &sexpVec3{vec: v}, nil
	})

	// -----------------------------------------------------------------------
	// (program :units :metric :z-safe 10 :z-tool-change 50 :name "widget")
	// -----------------------------------------------------------------------
	env.AddFunction("program", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		units := geom.Metric
		if v, ok := pa.kw["units"]; ok {
			u, err := toUnits(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("program: %w", err)
			}
			units = u
		}
		zSafe := units.FromMM(10)
		zToolChange := units.FromMM(50)
		if err := pa.float("z-safe", &zSafe); err != nil {
			return zygo.SexpNull, fmt.Errorf("program: %w", err)
		}
		if err := pa.float("z-tool-change", &zToolChange); err != nil {
			return zygo.SexpNull, fmt.Errorf("program: %w", err)
		}

		p := program.New(units, zSafe, zToolChange)
		if v, ok := pa.kw["name"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("program: name: %w", err)
			}
			p.SetName(s)
		}

		state.program = p
		return &sexpProgram{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (tool :shape :cylindrical :diameter 10 :length 20
	//       :direction :clockwise :spindle-speed 5000 :feed-rate 400)
	// -----------------------------------------------------------------------
	env.AddFunction("tool", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		t := tool.Tool{Shape: tool.Cylindrical, Units: geom.Metric, Direction: geom.Clockwise}

		if v, ok := pa.kw["shape"]; ok {
			s, err := toShape(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("tool: %w", err)
			}
			t.Shape = s
		}
		if v, ok := pa.kw["units"]; ok {
			u, err := toUnits(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("tool: %w", err)
			}
			t.Units = u
		}
		if v, ok := pa.kw["direction"]; ok {
			d, err := toDirection(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("tool: %w", err)
			}
			t.Direction = d
		}
		for kw, dst := range map[string]*float64{
			"diameter":      &t.Diameter,
			"length":        &t.Length,
			"angle":         &t.Angle,
			"spindle-speed": &t.SpindleSpeed,
			"feed-rate":     &t.FeedRate,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("tool: %w", err)
			}
		}
		// A conical tool's length follows from its angle and diameter
		// unless given explicitly.
		if t.Shape == tool.Conical && t.Length == 0 {
			t = tool.NewConical(t.Units, t.Angle, t.Diameter, t.Direction, t.SpindleSpeed, t.FeedRate)
		}

		if err := t.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("tool: %w", err)
		}
		return &sexpTool{t: t}, nil
	})

	// -----------------------------------------------------------------------
	// (line :points (list (vec3 0 0 -1) (vec3 10 0 -1)) :feed 400)
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var c cuts.Line

		if v, ok := pa.kw["points"]; ok {
			pts, err := toVec3List(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line: points: %w", err)
			}
			c.Points = pts
		}
		if err := pa.float("feed", &c.Feed); err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		return &sexpCut{cut: c, name: "line"}, nil
	})

	// -----------------------------------------------------------------------
	// (drill :positions (list (vec3 5 5 -8)) :retract-z 3)
	// -----------------------------------------------------------------------
	env.AddFunction("drill", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var c cuts.Drill

		if v, ok := pa.kw["positions"]; ok {
			pts, err := toVec3List(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("drill: positions: %w", err)
			}
			c.Positions = pts
		}
		if err := pa.float("retract-z", &c.RetractZ); err != nil {
			return zygo.SexpNull, fmt.Errorf("drill: %w", err)
		}
		if err := pa.float("feed", &c.Feed); err != nil {
			return zygo.SexpNull, fmt.Errorf("drill: %w", err)
		}
		return &sexpCut{cut: c, name: "drill"}, nil
	})

	// -----------------------------------------------------------------------
	// (circle :center (vec3 0 0 0) :end-z -6 :radius 20 :max-step-z 2
	//         :compensation :outer :mode :pocket)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c := cuts.Circle{Mode: cuts.CirclePocket}

		if v, ok := pa.kw["center"]; ok {
			p, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: center: %w", err)
			}
			c.Center = p
		}
		if v, ok := pa.kw["compensation"]; ok {
			comp, err := toCompensation(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: %w", err)
			}
			c.Compensation = comp
		}
		if v, ok := pa.kw["mode"]; ok {
			mode, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: mode: %w", err)
			}
			switch mode {
			case "pocket":
				c.Mode = cuts.CirclePocket
			case "drill":
				c.Mode = cuts.CircleDrill
			default:
				return zygo.SexpNull, fmt.Errorf("circle: invalid mode %q, expected pocket or drill", mode)
			}
		}
		for kw, dst := range map[string]*float64{
			"end-z":      &c.EndZ,
			"radius":     &c.Radius,
			"max-step-z": &c.MaxStepZ,
			"feed":       &c.Feed,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: %w", err)
			}
		}
		return &sexpCut{cut: c, name: "circle"}, nil
	})

	// -----------------------------------------------------------------------
	// (arc :start (vec3 10 0 -1) :end (vec3 0 10 -1) :center-x 0 :center-y 0
	//      :direction :counterclockwise)
	// -----------------------------------------------------------------------
	env.AddFunction("arc", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var c cuts.Arc

		if v, ok := pa.kw["start"]; ok {
			p, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: start: %w", err)
			}
			c.Start = p
		}
		if v, ok := pa.kw["end"]; ok {
			p, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: end: %w", err)
			}
			c.End = p
		}
		if v, ok := pa.kw["direction"]; ok {
			d, err := toDirection(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: %w", err)
			}
			c.Direction = d
		}
		for kw, dst := range map[string]*float64{
			"center-x": &c.Center.X,
			"center-y": &c.Center.Y,
			"feed":     &c.Feed,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: %w", err)
			}
		}
		return &sexpCut{cut: c, name: "arc"}, nil
	})

	// -----------------------------------------------------------------------
	// (area :corner (vec3 0 0 0) :width 100 :length 50 :end-z -1 :max-step-z 2)
	// -----------------------------------------------------------------------
	env.AddFunction("area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var c cuts.Area

		if v, ok := pa.kw["corner"]; ok {
			p, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("area: corner: %w", err)
			}
			c.Corner = p
		}
		for kw, dst := range map[string]*float64{
			"width":      &c.Size.X,
			"length":     &c.Size.Y,
			"end-z":      &c.EndZ,
			"max-step-z": &c.MaxStepZ,
			"feed":       &c.Feed,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("area: %w", err)
			}
		}
		return &sexpCut{cut: c, name: "area"}, nil
	})

	// -----------------------------------------------------------------------
	// (frame :corner (vec3 0 0 0) :width 40 :length 30 :end-z -1
	//        :max-step-z 2 :compensation :outer)
	// -----------------------------------------------------------------------
	env.AddFunction("frame", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var c cuts.Frame

		if v, ok := pa.kw["corner"]; ok {
			p, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("frame: corner: %w", err)
			}
			c.Corner = p
		}
		if v, ok := pa.kw["compensation"]; ok {
			comp, err := toCompensation(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("frame: %w", err)
			}
			c.Compensation = comp
		}
		for kw, dst := range map[string]*float64{
			"width":      &c.Size.X,
			"length":     &c.Size.Y,
			"end-z":      &c.EndZ,
			"max-step-z": &c.MaxStepZ,
			"feed":       &c.Feed,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("frame: %w", err)
			}
		}
		return &sexpCut{cut: c, name: "frame"}, nil
	})

	// -----------------------------------------------------------------------
	// (extend prog tool cut...)
	// -----------------------------------------------------------------------
	env.AddFunction("extend", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("extend: expected (extend program tool cut...)")
		}
		prog, ok := pa.positional[0].(*sexpProgram)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("extend: expected program, got %T", pa.positional[0])
		}
		cutter, ok := pa.positional[1].(*sexpTool)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("extend: expected tool, got %T", pa.positional[1])
		}
		ops := make([]cuts.Cut, 0, len(pa.positional)-2)
		for _, arg := range pa.positional[2:] {
			c, ok := arg.(*sexpCut)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("extend: expected cut, got %T", arg)
			}
			ops = append(ops, c.cut)
		}

		err := prog.p.Extend(cutter.t, func(ctx *program.Context) error {
			for _, c := range ops {
				if err := ctx.AppendCut(c); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extend: %w", err)
		}
		return prog, nil
	})

	// -----------------------------------------------------------------------
	// (set-name prog "widget")
	// -----------------------------------------------------------------------
	env.AddFunction("set_name", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("set-name: expected (set-name program \"name\")")
		}
		prog, ok := pa.positional[0].(*sexpProgram)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("set-name: expected program, got %T", pa.positional[0])
		}
		s, err := toString(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-name: %w", err)
		}
		prog.p.SetName(s)
		return prog, nil
	})
}
