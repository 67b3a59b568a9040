package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut/advanced"
	"github.com/osuushi/earcut/dbg"
	"github.com/osuushi/earcut/fixture"
	"github.com/pkg/errors"
)

type runner struct {
	out     io.Writer
	au      aurora.Aurora
	options *advanced.Options

	pngDir    string
	imgcat    bool
	scale     float64
	labels    bool
	stats     bool
	triangles bool

	// Compare against each case's expected triangles and errors
	checkCases bool
}

// Triangulate every case and report on it. Returns the number of cases that
// did not meet their expectations.
func (r *runner) run(cases []fixture.Case) (int, error) {
	failed := 0
	for _, c := range cases {
		ok, err := r.runCase(c)
		if err != nil {
			return failed, errors.Wrapf(err, "case %q", c.Name)
		}
		if !ok {
			failed++
		}
	}
	return failed, nil
}

func (r *runner) runCase(c fixture.Case) (bool, error) {
	flat, err := advanced.Flatten(c.Coordinates)
	if err != nil {
		return false, err
	}

	result, err := advanced.Triangulate(flat.Coordinates, flat.HoleIndices, flat.Dimension, r.options)
	if err != nil {
		// Strict hole failures are a verdict, not a reason to stop
		if errors.Is(err, advanced.ErrUnresolvableHole) {
			fmt.Fprintf(r.out, "%s: %s\n", c.Name, dbg.Verdict(r.au, 1, 0, err.Error()))
			return false, nil
		}
		return false, err
	}

	deviation, err := advanced.Deviation(flat.Coordinates, flat.HoleIndices, flat.Dimension, result.Triangles)
	if err != nil {
		return false, err
	}

	ok := true
	var report string
	if r.checkCases {
		ok = result.Len() == c.Triangles && deviation <= c.Errors
		report = fmt.Sprintf("%d/%d triangles, deviation %g (allowed %g)", result.Len(), c.Triangles, deviation, c.Errors)
	} else {
		report = fmt.Sprintf("%d triangles, deviation %g", result.Len(), deviation)
	}
	verdict := 0.0
	if !ok {
		verdict = 1
	}
	fmt.Fprintf(r.out, "%s: %s\n", c.Name, dbg.Verdict(r.au, verdict, 0, report))

	if r.stats {
		s := result.Stats
		fmt.Fprintln(r.out, dbg.Muted(r.au, fmt.Sprintf("  hashed=%t passes=%v cured=%d splits=%d dropped=%v nodes=%d",
			s.Hashed, s.Passes, s.CuredIntersections, s.Splits, s.DroppedHoles, s.Nodes)))
	}
	if r.triangles {
		for k := 0; k < result.Len(); k++ {
			t := result.Triangle(k)
			fmt.Fprintf(r.out, "  %d %d %d\n", t[0], t[1], t[2])
		}
	}

	if r.pngDir != "" || r.imgcat {
		drawing := dbg.Draw(flat.Coordinates, flat.HoleIndices, flat.Dimension, result.Triangles, dbg.DrawOptions{
			Scale:  r.scale,
			Labels: r.labels,
		})
		if r.pngDir != "" {
			path := filepath.Join(r.pngDir, fileName(c.Name)+".png")
			if err := drawing.SavePNG(path); err != nil {
				return ok, errors.Wrapf(err, "writing %q", path)
			}
		}
		if r.imgcat {
			if err := dbg.Cat(drawing, r.out); err != nil {
				return ok, err
			}
		}
	}
	return ok, nil
}

func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, name)
}
