// Package fixture loads polygons with expected triangulation results.
//
// The canonical format is a JSON object whose keys name test cases:
//
//	{
//	  "square": {
//	    "coordinates": [[[0,0],[10,0],[10,10],[0,10]]],
//	    "triangles": 2,
//	    "errors": 0
//	  }
//	}
//
// Each case's coordinates are rings of points; the first ring is the outer
// boundary and the rest are holes. "triangles" is the expected triangle count
// and "errors" the largest acceptable deviation. The same shape is accepted as
// YAML. SVG files and the plain text format of the command line tool are also
// supported, one case per file.
package fixture

import (
	"bufio"
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Case struct {
	Name        string        `json:"-" yaml:"-"`
	Coordinates [][][]float64 `json:"coordinates" yaml:"coordinates"`
	Triangles   int           `json:"triangles" yaml:"triangles"`
	Errors      float64       `json:"errors" yaml:"errors"`
}

// Number of vertices over all rings
func (c *Case) Vertices() int {
	n := 0
	for _, ring := range c.Coordinates {
		n += len(ring)
	}
	return n
}

var ErrUnknownFormat = errors.New("unknown fixture format")

func ParseJSON(r io.Reader) ([]Case, error) {
	var named map[string]Case
	if err := json.NewDecoder(r).Decode(&named); err != nil {
		return nil, errors.Wrap(err, "decoding JSON fixtures")
	}
	return sortedCases(named), nil
}

func ParseYAML(r io.Reader) ([]Case, error) {
	var named map[string]Case
	if err := yaml.NewDecoder(r).Decode(&named); err != nil {
		return nil, errors.Wrap(err, "decoding YAML fixtures")
	}
	return sortedCases(named), nil
}

func sortedCases(named map[string]Case) []Case {
	cases := make([]Case, 0, len(named))
	for name, c := range named {
		c.Name = name
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases
}

// ParseText reads one "x y" point per line, with a blank line between rings.
// Lines starting with # are comments. The case's expected values are left
// zero.
func ParseText(r io.Reader) (Case, error) {
	var c Case
	var ring [][]float64
	flush := func() {
		if len(ring) > 0 {
			c.Coordinates = append(c.Coordinates, ring)
			ring = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current ring
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Case{}, errors.Errorf("line %d: expected at least 2 coordinates, got %q", lineNumber, line)
		}
		point := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Case{}, errors.Wrapf(err, "line %d", lineNumber)
			}
			point[i] = v
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return Case{}, errors.Wrap(err, "reading points")
	}
	flush()
	return c, nil
}

// Load reads the fixture file at path, choosing the parser by extension.
// Single-case formats are named after the file.
func Load(filename string) ([]Case, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening fixture %q", filename)
	}
	defer f.Close()
	return parse(f, filename)
}

func parse(r io.Reader, filename string) ([]Case, error) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	var (
		cases []Case
		c     Case
		err   error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		cases, err = ParseJSON(r)
	case ".yaml", ".yml":
		cases, err = ParseYAML(r)
	case ".svg":
		c, err = ParseSVG(r)
		c.Name = name
		cases = []Case{c}
	case ".txt", "":
		c, err = ParseText(r)
		c.Name = name
		cases = []Case{c}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", filename)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %q", filename)
	}
	return cases, nil
}

//go:embed fixtures
var fixtures embed.FS

// Builtin returns every embedded fixture case, sorted by name.
func Builtin() ([]Case, error) {
	entries, err := fs.ReadDir(fixtures, "fixtures")
	if err != nil {
		return nil, errors.Wrap(err, "listing embedded fixtures")
	}

	var all []Case
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := path.Join("fixtures", entry.Name())
		f, err := fixtures.Open(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "opening embedded fixture %q", filename)
		}
		cases, err := parse(f, filename)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all, nil
}

// Named returns the embedded case with the given name.
func Named(name string) (Case, error) {
	cases, err := Builtin()
	if err != nil {
		return Case{}, err
	}
	for _, c := range cases {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, errors.Errorf("no fixture named %q", name)
}
