// Command triangles reads a set of triangles and prints the IDs of those
// that intersect at least one other triangle, one per line.
//
// Input is read from stdin (or -i) as a count followed by nine coordinates
// per triangle, or from an STL file with --stl. With -v the result is
// exported as two STL meshes, intersecting and clear, for a mesh viewer.
// Setting DEBUG in the environment prints partition statistics to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/akmonengine/triangles"
	"github.com/akmonengine/triangles/meshio"
	"github.com/akmonengine/triangles/shape"
)

const version = "1.0.0"

type options struct {
	visualize bool
	help      bool
	version   bool
	brute     bool
	input     string
	stl       string
	out       string
	workers   int
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("triangles", flag.ContinueOnError)

	fs.BoolVar(&o.visualize, "v", false, "export intersecting and clear triangles as STL")
	fs.BoolVar(&o.visualize, "visualize", false, "same as -v")
	fs.BoolVar(&o.help, "h", false, "print this help")
	fs.BoolVar(&o.help, "help", false, "same as -h")
	fs.BoolVar(&o.version, "version", false, "print the version")
	fs.BoolVar(&o.brute, "brute", false, "compare every pair, without spatial partition")
	fs.StringVar(&o.input, "i", "", "read the text format from this file instead of stdin")
	fs.StringVar(&o.input, "input", "", "same as -i")
	fs.StringVar(&o.stl, "stl", "", "read triangles from this STL file")
	fs.StringVar(&o.out, "o", "triangles", "path prefix of the files written by -v")
	fs.StringVar(&o.out, "out", "triangles", "same as -o")
	fs.IntVar(&o.workers, "w", triangles.DEFAULT_WORKERS, "goroutines used to collect pairs")
	fs.IntVar(&o.workers, "workers", triangles.DEFAULT_WORKERS, "same as -w")

	err := fs.Parse(args)
	return o, fs, err
}

func load(o options, stdin io.Reader) ([]shape.Triangle, error) {
	if o.stl != "" {
		return meshio.LoadSTL(o.stl)
	}

	if o.input == "" {
		return meshio.ReadText(stdin)
	}

	f, err := os.Open(o.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return meshio.ReadText(f)
}

func run(o options, stdin io.Reader, stdout io.Writer, debug bool) error {
	tris, err := load(o, stdin)
	if err != nil {
		return err
	}

	start := time.Now()
	var ids []int
	if o.brute {
		ids, _ = triangles.BruteForce(tris)
	} else {
		tree := triangles.BroadPhase(tris, triangles.Config{Workers: o.workers})
		if debug {
			s := tree.Stats()
			log.Printf("partition: %d triangles (%d discarded), %d nodes, %d leaves, depth %d, max load %d, root load %d",
				s.Triangles, s.Discarded, s.Nodes, s.Leaves, s.MaxDepth, s.MaxLoad, s.RootLoad)
		}
		ids, _ = triangles.NarrowPhase(tree)
	}
	if debug {
		log.Printf("%d of %d triangles intersect (%v)", len(ids), len(tris), time.Since(start))
	}

	if !o.visualize {
		return meshio.WriteIDs(stdout, ids)
	}

	paths, err := meshio.ExportVisualization(o.out, tris, ids)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("wrote %s", p)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("triangles: ")

	o, fs, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	switch {
	case o.help:
		fs.SetOutput(os.Stdout)
		fmt.Println("usage: triangles [flags] < input")
		fs.PrintDefaults()
		return
	case o.version:
		fmt.Println("triangles", version)
		return
	}

	if err := run(o, os.Stdin, os.Stdout, os.Getenv("DEBUG") != ""); err != nil {
		log.Fatalf("%v", err)
	}
}
