// Command earcut triangulates polygons and reports how well the triangles
// cover them.
//
// With no arguments, a polygon is read from stdin as newline separated points
// in the form "x y", with each ring separated by an extra newline. The first
// ring is the outer boundary and the rest are holes. Rings may wind either
// way.
//
// Fixture files (.json, .yaml, .svg, .txt) given as arguments are checked
// against their expected triangle counts and deviations, as is the built-in
// suite with --suite.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut/advanced"
	"github.com/osuushi/earcut/fixture"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("earcut", "Triangulate polygons by ear clipping.")

	configPath    = app.Flag("config", "YAML file with defaults for the flags below.").ExistingFile()
	hashThreshold = app.Flag("hash-threshold", "Vertex count above which ear tests use the Z-order index (negative: never).").Int()
	strictHoles   = app.Flag("strict-holes", "Fail on holes that cannot be bridged instead of dropping them.").Bool()
	suite         = app.Flag("suite", "Check the built-in fixture suite.").Bool()
	pngDir        = app.Flag("png", "Write a PNG drawing of each triangulation into this directory.").String()
	showImage     = app.Flag("imgcat", "Show each triangulation inline in the terminal.").Bool()
	scale         = app.Flag("scale", "Pixels per unit in drawings (0 fits to 512 pixels).").Float64()
	labels        = app.Flag("labels", "Label vertices with their index in drawings.").Bool()
	showStats     = app.Flag("stats", "Print what each triangulation had to do.").Bool()
	printTris     = app.Flag("triangles", "Print the triangles' vertex indices.").Bool()
	logLevel      = app.Flag("log-level", "debug, info, warn or error.").String()
	noColor       = app.Flag("no-color", "Disable colored output.").Bool()

	files = app.Arg("fixtures", "Fixture files to check.").ExistingFiles()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		app.FatalIfError(err, "")
	}
	cfg.override()

	level, err := cfg.level()
	app.FatalIfError(err, "")
	advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cases, err := gatherCases()
	app.FatalIfError(err, "")

	r := &runner{
		out: os.Stdout,
		au:  aurora.NewAurora(!*noColor),
		options: &advanced.Options{
			HashThreshold: cfg.HashThreshold,
			StrictHoles:   cfg.StrictHoles,
		},
		pngDir:     *pngDir,
		imgcat:     *showImage,
		scale:      cfg.Scale,
		labels:     *labels,
		stats:      *showStats,
		triangles:  *printTris,
		checkCases: *suite || len(*files) > 0,
	}

	failed, err := r.run(cases)
	app.FatalIfError(err, "")
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d cases failed\n", failed, len(cases))
		os.Exit(1)
	}
}

func gatherCases() ([]fixture.Case, error) {
	var cases []fixture.Case
	if *suite {
		builtin, err := fixture.Builtin()
		if err != nil {
			return nil, err
		}
		cases = append(cases, builtin...)
	}
	for _, path := range *files {
		loaded, err := fixture.Load(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, loaded...)
	}
	if len(cases) > 0 {
		return cases, nil
	}

	c, err := fixture.ParseText(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	c.Name = "stdin"
	return []fixture.Case{c}, nil
}
