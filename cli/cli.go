// Package cli turns command line arguments into the validated inputs
// the maze generator runs with.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/beka-birhanu/backtracker-maze/config"
)

// Custom error types
var (
	ErrInvalidWidth  = errors.New("width must be a positive integer")
	ErrInvalidHeight = errors.New("height must be a positive integer")
	ErrInvalidDelay  = errors.New("delay must not be negative")
)

const usageTemplate = `Usage: backtracker-maze [options]

Generates a random perfect maze with recursive backtracking and prints
it as an ASCII diagram.

Options:
  -w, --width <cells>    number of cell columns (default %d)
  -h, --height <cells>   number of cell rows (default %d)
  -s, --seed <number>    generation seed, rerunning with the same seed
                         reproduces the maze; zero or below draws one
                         from the clock (default %d)
  -a, --animate          redraw the maze while it is carved
      --delay <ms>       frame delay for --animate (default %d)
  -v, --verbose          log carving steps to stderr
      --help             print this help and exit
`

// Options carries the validated command line arguments.
type Options struct {
	Width   int   // Number of cell columns.
	Height  int   // Number of cell rows.
	Seed    int64 // Generation seed; zero or below asks the caller to derive one.
	Animate bool  // Redraw the diagram after every carved passage.
	DelayMS int   // Animation frame delay in milliseconds.
	Verbose bool  // Log carving steps.
}

// Parse reads command line arguments into validated Options, with
// defaults taken from the environment-backed config. Usage and error
// text go to errW. A help request surfaces as flag.ErrHelp.
func Parse(args []string, errW io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("backtracker-maze", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.Usage = func() {
		fmt.Fprintf(errW, usageTemplate,
			config.Envs.DefaultWidth,
			config.Envs.DefaultHeight,
			config.Envs.DefaultSeed,
			config.Envs.AnimationDelayMS,
		)
	}

	opts := &Options{}
	fs.IntVar(&opts.Width, "width", config.Envs.DefaultWidth, "number of cell columns")
	fs.IntVar(&opts.Width, "w", config.Envs.DefaultWidth, "number of cell columns (shorthand)")
	fs.IntVar(&opts.Height, "height", config.Envs.DefaultHeight, "number of cell rows")
	fs.IntVar(&opts.Height, "h", config.Envs.DefaultHeight, "number of cell rows (shorthand)")
	fs.Int64Var(&opts.Seed, "seed", config.Envs.DefaultSeed, "generation seed")
	fs.Int64Var(&opts.Seed, "s", config.Envs.DefaultSeed, "generation seed (shorthand)")
	fs.BoolVar(&opts.Animate, "animate", false, "redraw the maze while it is carved")
	fs.BoolVar(&opts.Animate, "a", false, "redraw the maze while it is carved (shorthand)")
	fs.IntVar(&opts.DelayMS, "delay", config.Envs.AnimationDelayMS, "animation frame delay in milliseconds")
	fs.BoolVar(&opts.Verbose, "verbose", false, "log carving steps to stderr")
	fs.BoolVar(&opts.Verbose, "v", false, "log carving steps to stderr (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := validate(opts); err != nil {
		fs.Usage()
		return nil, err
	}

	return opts, nil
}

// validate rejects argument values the generator must never run with.
func validate(opts *Options) error {
	if opts.Width < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, opts.Width)
	}
	if opts.Height < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidHeight, opts.Height)
	}
	if opts.DelayMS < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelay, opts.DelayMS)
	}

	return nil
}
