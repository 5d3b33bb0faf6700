package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geomath"
	"github.com/osuushi/geomath/pointio"
	"github.com/osuushi/geomath/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the geometry helpers. Points come from the
// command's arguments if given, otherwise from --input or stdin as newline
// separated "x y" pairs (or an SVG drawing with --svg).
//
//	geomath line "0 0" "10 10"
//	geomath foot --png foot.png --show < points.txt
//	geomath rotate --angle 90 --origin "1 1" < triangle.txt

type options struct {
	input   string
	svg     bool
	strict  bool
	png     string
	show    bool
	scale   float64
	color   bool
	verbose bool

	args   []string
	angle  float64
	origin string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("geomath: ")

	var opts options
	app := kingpin.New("geomath", "2D analytic geometry helpers.")
	app.Flag("input", "Read points from this file instead of stdin.").Short('i').StringVar(&opts.input)
	app.Flag("svg", "Input is an SVG drawing.").BoolVar(&opts.svg)
	app.Flag("strict", "Fail on coincident or non-finite points.").BoolVar(&opts.strict)
	app.Flag("png", "Render the result to this PNG file.").StringVar(&opts.png)
	app.Flag("show", "Print the rendered PNG in the terminal (iTerm only). Requires --png.").BoolVar(&opts.show)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&opts.scale)
	app.Flag("color", "Colorize output.").BoolVar(&opts.color)
	app.Flag("verbose", "Dump the parsed points.").Short('v').BoolVar(&opts.verbose)

	for _, c := range commands {
		cmd := app.Command(c.name, c.help)
		cmd.Arg("points", `Points as "x y". Read from input when omitted.`).StringsVar(&opts.args)
		if c.name == "rotate" {
			cmd.Flag("angle", "Degrees, counterclockwise.").Required().Float64Var(&opts.angle)
			cmd.Flag("origin", `Rotation origin as "x y".`).Default("0 0").StringVar(&opts.origin)
		}
	}

	name := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(name, opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(name string, opts options, stdin io.Reader, stdout io.Writer) error {
	c, ok := commandByName(name)
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}
	if opts.show && opts.png == "" {
		return errors.New("--show requires --png")
	}
	if opts.png != "" && !(opts.scale > 0) {
		return errors.Errorf("--scale must be positive, got %g", opts.scale)
	}

	points, err := readPoints(opts, stdin)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("%d points: %# v", len(points), pretty.Formatter(points))
	}
	if c.pointCount >= 0 && len(points) != c.pointCount {
		return errors.Errorf("%s needs %d points, got %d", c.name, c.pointCount, len(points))
	}
	if opts.strict {
		if err := geomath.CheckFinite(points...); err != nil {
			return err
		}
	}

	out := &output{w: stdout, au: aurora.NewAurora(opts.color)}
	var scene render.Scene
	if err := c.run(opts, points, out, &scene); err != nil {
		return err
	}
	if out.err != nil {
		return errors.Wrap(out.err, "writing output")
	}

	if opts.png == "" {
		return nil
	}
	if err := scene.SavePNG(opts.png, opts.scale); err != nil {
		return err
	}
	if opts.show {
		return render.Show(opts.png, stdout)
	}
	return nil
}

func readPoints(opts options, stdin io.Reader) ([]geomath.Point, error) {
	if len(opts.args) > 0 {
		points := make([]geomath.Point, len(opts.args))
		for i, arg := range opts.args {
			p, err := pointio.ParsePoint(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "argument %d", i+1)
			}
			points[i] = p
		}
		return points, nil
	}

	in := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	if opts.svg {
		return pointio.ReadSVGPoints(in)
	}
	return pointio.ReadPoints(in)
}

// Labeled result lines. The first write error sticks and later writes are
// dropped, so commands don't need to check every line.
type output struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

func (o *output) result(label string, value interface{}) {
	o.printf("%s %v\n", o.au.Cyan(label+":"), o.au.Bold(value))
}

func (o *output) point(p geomath.Point) {
	o.printf("%g %g\n", p.X, p.Y)
}

func (o *output) printf(format string, args ...interface{}) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}
