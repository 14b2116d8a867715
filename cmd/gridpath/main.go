// Command gridpath reads a character maze, finds the shortest 4-neighbour path
// from a start cell to an end cell and reports its length.
//
// Usage:
//
//	gridpath [-config gridpath.yaml] [-in maze.txt] [-wall '#'] [-start S] [-end E]
//	         [-png out.png] [-scale 8] [-v]
//
// The maze is read from stdin when -in is omitted. Every cell that is not a
// wall is open and costs one step to enter. Besides the distance it prints the
// number of open cells reachable from the start and the number of separate
// open regions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Roguelazer/advent-of-code-2025/bfs"
	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/dijkstra"
	"github.com/Roguelazer/advent-of-code-2025/gridgraph"
)

var log = logrus.New()

var (
	errNoMarker = errors.New("gridpath: marker not found in maze")
	errNoRoute  = errors.New("gridpath: end is unreachable from start")
	errBadRune  = errors.New("gridpath: flag must be a single character")
)

type config struct {
	in      string
	wall    rune
	start   rune
	end     rune
	png     string
	scale   int
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("gridpath failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	log.SetLevel(logrus.InfoLevel)
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	text, err := readInput(cfg.in, stdin)
	if err != nil {
		return err
	}
	maze, err := densegrid.FromText(text, func(r rune) rune { return r })
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":  maze.Width(),
		"height": maze.Height(),
	}).Debug("parsed maze")

	start, ok := densegrid.Find(maze, cfg.start)
	if !ok {
		return fmt.Errorf("%w: start %q", errNoMarker, cfg.start)
	}
	end, ok := densegrid.Find(maze, cfg.end)
	if !ok {
		return fmt.Errorf("%w: end %q", errNoMarker, cfg.end)
	}

	open := func(r rune) bool { return r != cfg.wall }
	dist, prev, err := dijkstra.Dijkstra(maze, start,
		func(g *densegrid.Grid[rune], p densegrid.Point) bool { return open(g.At(p)) },
		dijkstra.UnitCost[rune, int],
		dijkstra.WithOnSettle(func(p densegrid.Point, d int) {
			log.WithFields(logrus.Fields{"cell": p, "dist": d}).Trace("settled")
		}),
	)
	if err != nil {
		return err
	}

	d, ok := dist.At(end).Value()
	if !ok {
		return fmt.Errorf("%w: %v → %v", errNoRoute, start, end)
	}
	path, _ := dijkstra.PathTo(prev, start, end)

	flood, err := bfs.BFS(maze, start,
		bfs.WithFilterNeighbor(func(_, next densegrid.Point) bool { return open(maze.At(next)) }),
	)
	if err != nil {
		return err
	}

	regions := gridgraph.ConnectedComponents(maze, open, gridgraph.Conn4)
	log.WithFields(logrus.Fields{
		"start":   start,
		"end":     end,
		"regions": len(regions),
	}).Debug("search complete")

	fmt.Fprintf(stdout, "distance: %d\n", d)
	fmt.Fprintf(stdout, "path: %d cells\n", len(path))
	fmt.Fprintf(stdout, "reachable: %d cells\n", len(flood.Order))
	fmt.Fprintf(stdout, "regions: %d\n", len(regions))

	if cfg.png != "" {
		if err := savePath(maze, path, cfg, cfg.png); err != nil {
			return err
		}
		log.WithField("file", cfg.png).Info("wrote image")
	}

	return nil
}

// fileConfig is the YAML form of the flags. Flags given on the command line
// win over values from the file.
type fileConfig struct {
	In      string `yaml:"in"`
	Wall    string `yaml:"wall"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	PNG     string `yaml:"png"`
	Scale   int    `yaml:"scale"`
	Verbose bool   `yaml:"verbose"`
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	var (
		cfg                    config
		wall, start, end, file string
	)
	fs.StringVar(&file, "config", "", "YAML file with default flag values")
	fs.StringVar(&cfg.in, "in", "", "maze file (default stdin)")
	fs.StringVar(&wall, "wall", "#", "wall character")
	fs.StringVar(&start, "start", "S", "start character")
	fs.StringVar(&end, "end", "E", "end character")
	fs.StringVar(&cfg.png, "png", "", "write the maze and path as a PNG to this file")
	fs.IntVar(&cfg.scale, "scale", 1, "PNG pixels per cell")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if file != "" {
		fc, err := loadConfig(file)
		if err != nil {
			return cfg, err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		override(set, "in", fc.In, &cfg.in)
		override(set, "wall", fc.Wall, &wall)
		override(set, "start", fc.Start, &start)
		override(set, "end", fc.End, &end)
		override(set, "png", fc.PNG, &cfg.png)
		override(set, "scale", fc.Scale, &cfg.scale)
		override(set, "v", fc.Verbose, &cfg.verbose)
	}

	for _, f := range []struct {
		name string
		src  string
		dst  *rune
	}{{"wall", wall, &cfg.wall}, {"start", start, &cfg.start}, {"end", end, &cfg.end}} {
		if utf8.RuneCountInString(f.src) != 1 {
			return cfg, fmt.Errorf("%w: -%s=%q", errBadRune, f.name, f.src)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.src)
	}

	return cfg, nil
}

// override copies v into dst when the flag was not set and v is not zero.
func override[T comparable](set map[string]bool, name string, v T, dst *T) {
	var zero T
	if !set[name] && v != zero {
		*dst = v
	}
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, fmt.Errorf("gridpath: config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("gridpath: config %s: %w", path, err)
	}
	log.WithField("file", path).Debug("loaded config")
	return fc, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("gridpath: read %s: %w", path, err)
	}
	return string(b), nil
}

var (
	wallColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	openColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	pathColor = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	markColor = color.RGBA{R: 0x30, G: 0xa0, B: 0x40, A: 0xff}
)

// savePath renders walls, open cells, the path and both markers as one pixel per cell.
func savePath(maze *densegrid.Grid[rune], path []densegrid.Point, cfg config, file string) error {
	overlay := densegrid.NewWithBoundsOf(maze, false)
	for _, p := range path {
		overlay.Put(p, true)
	}
	kind := densegrid.NewWithBoundsOf(maze, color.Color(openColor))
	for p, r := range maze.All() {
		switch {
		case r == cfg.start || r == cfg.end:
			kind.Put(p, markColor)
		case overlay.At(p):
			kind.Put(p, pathColor)
		case r == cfg.wall:
			kind.Put(p, wallColor)
		}
	}

	return kind.SavePNGScaled(file, cfg.scale, func(c color.Color) color.Color { return c })
}
