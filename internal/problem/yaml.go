package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/functions"
)

// suiteFile is the on-disk layout of a suite:
//
//	name: tails
//	problems:
//	  - label: x^-2
//	    function: power
//	    args: {n: -2}
//	    interval: [1, .inf]
//	    exact: 1
//	  - function: inv_sqrt
//	    interval: [0, 1]
//	    t2: {at_zero: 2}
//	problems_2d:
//	  - function: product_xy
//	    domain: {x: [0, 1], y: [2, 3]}
//	  - function: sum_squares_xy
//	    domain: {outer_axis: x, outer: [0, 1], inner_lo: [0], inner_hi: [0, 1]}
type suiteFile struct {
	Name       string    `yaml:"name"`
	Problems   []entry   `yaml:"problems"`
	Problems2D []entry2D `yaml:"problems_2d"`
}

type entry struct {
	Label    string         `yaml:"label"`
	Function string         `yaml:"function"`
	Args     functions.Args `yaml:"args"`
	Interval []float64      `yaml:"interval"`
	Exact    *float64       `yaml:"exact"`
	T2       *t2Entry       `yaml:"t2"`
}

type t2Entry struct {
	AtZero float64 `yaml:"at_zero"`
}

type entry2D struct {
	Label    string         `yaml:"label"`
	Function string         `yaml:"function"`
	Args     functions.Args `yaml:"args"`
	Domain   domainEntry    `yaml:"domain"`
	Exact    *float64       `yaml:"exact"`
}

// domainEntry is either a rectangle (x, y) or a normal region whose inner
// bounds are polynomials in the outer variable (coefficients low to high).
type domainEntry struct {
	X         []float64 `yaml:"x"`
	Y         []float64 `yaml:"y"`
	OuterAxis string    `yaml:"outer_axis"`
	Outer     []float64 `yaml:"outer"`
	InnerLo   []float64 `yaml:"inner_lo"`
	InnerHi   []float64 `yaml:"inner_hi"`
}

// Load reads and parses the suite file at path. A suite without a name is
// named after the file.
func Load(path string, reg *functions.Registry) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read suite: %w", err)
	}
	s, err := Parse(data, reg)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Parse decodes a YAML suite. Unknown keys are rejected.
func Parse(data []byte, reg *functions.Registry) (Suite, error) {
	if reg == nil {
		reg = functions.NewRegistry()
	}

	var doc suiteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Suite{}, fmt.Errorf("decode suite: %w", err)
	}

	s := Suite{Name: doc.Name}
	for i, e := range doc.Problems {
		p, err := e.build(reg)
		if err != nil {
			return Suite{}, fmt.Errorf("problems[%d]: %w", i, err)
		}
		s.Problems = append(s.Problems, p)
	}
	for i, e := range doc.Problems2D {
		p, err := e.build(reg)
		if err != nil {
			return Suite{}, fmt.Errorf("problems_2d[%d]: %w", i, err)
		}
		s.Problems2D = append(s.Problems2D, p)
	}
	if s.Len() == 0 {
		return Suite{}, fmt.Errorf("suite has no problems: %w", ErrBadProblem)
	}

	return s, nil
}

func (e entry) build(reg *functions.Registry) (Problem, error) {
	f, err := reg.Function(e.Function, e.Args)
	if err != nil {
		return Problem{}, errors.Join(ErrBadProblem, err)
	}
	iv, err := interval("interval", e.Interval)
	if err != nil {
		return Problem{}, err
	}

	label := e.Label
	if label == "" {
		label = fmt.Sprint(f)
	}
	if e.T2 != nil {
		if iv.A != 0 {
			return Problem{}, fmt.Errorf("t2 needs an interval starting at 0, got %v: %w", iv, ErrBadProblem)
		}
		// x = t² maps [0, b] onto [0, √b]
		iv.B = math.Sqrt(iv.B)
		f = functions.T2Transform{Base: f, AtZero: e.T2.AtZero, Label: label}
	}

	p := Problem{Label: label, F: f, Interval: iv}
	if e.Exact != nil {
		p.Exact, p.HasExact = *e.Exact, true
	}

	return p, nil
}

func (e entry2D) build(reg *functions.Registry) (Problem2D, error) {
	f, err := reg.Function2D(e.Function, e.Args)
	if err != nil {
		return Problem2D{}, errors.Join(ErrBadProblem, err)
	}
	d, err := e.Domain.build()
	if err != nil {
		return Problem2D{}, err
	}

	label := e.Label
	if label == "" {
		label = fmt.Sprint(f)
	}
	p := Problem2D{Label: label, F: f, Domain: d}
	if e.Exact != nil {
		p.Exact, p.HasExact = *e.Exact, true
	}

	return p, nil
}

func (d domainEntry) build() (core.Domain2D, error) {
	if d.X != nil || d.Y != nil {
		x, err := interval("domain.x", d.X)
		if err != nil {
			return core.Domain2D{}, err
		}
		y, err := interval("domain.y", d.Y)
		if err != nil {
			return core.Domain2D{}, err
		}
		return core.Rect(x, y)
	}

	outer, err := interval("domain.outer", d.Outer)
	if err != nil {
		return core.Domain2D{}, err
	}
	if len(d.InnerLo) == 0 || len(d.InnerHi) == 0 {
		return core.Domain2D{}, fmt.Errorf("domain needs x/y or inner_lo/inner_hi: %w", ErrBadProblem)
	}
	lo := functions.Polynomial{Coeffs: d.InnerLo}
	hi := functions.Polynomial{Coeffs: d.InnerHi}

	switch d.OuterAxis {
	case "", "x":
		return core.NewNormalDomain(outer, lo.At, hi.At)
	case "y":
		return core.NewNormalDomainY(outer, lo.At, hi.At)
	default:
		return core.Domain2D{}, fmt.Errorf("outer_axis %q: %w", d.OuterAxis, ErrBadProblem)
	}
}

func interval(field string, v []float64) (core.Interval, error) {
	if len(v) != 2 {
		return core.Interval{}, fmt.Errorf("%s needs [lower, upper], got %v: %w", field, v, ErrBadProblem)
	}

	return core.NewInterval(v[0], v[1])
}
