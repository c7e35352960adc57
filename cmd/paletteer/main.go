package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/bodgit/paletteer"
	"github.com/bodgit/paletteer/checksum"
	"github.com/bodgit/paletteer/dither"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// writePNG writes f as a full-color PNG preview, purely so the CLI has an
// observable result; this is not the out-of-scope PNG-8 indexed encoder,
// just a generic write of the already-quantized pixels via the standard
// library's image/png.
func writePNG(w io.Writer, f *frame.RGBA) error {
	return png.Encode(w, f.ToImage())
}

const defaultDB = "paletteer.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "paletteer"
	app.Usage = "palette reduction and dithering utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PALETTEER_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to palette cache database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		analyzeCommand,
		exactCommand,
		mediancutCommand,
		ditherCommand,
		cacheCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func logger(c *cli.Context) *log.Logger {
	l := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		l.SetOutput(os.Stderr)
	}
	return l
}

func loadFrames(paths []string) ([]frame.Frame, error) {
	frames := make([]frame.Frame, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		frames = append(frames, frame.FromImage(img))
	}
	return frames, nil
}

var analyzeCommand = &cli.Command{
	Name:      "analyze",
	Usage:     "Derive a palette from one or more images by frequency analysis",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "threshold", Value: 150, Usage: "minimum perceptual distance between chosen colors"},
		&cli.IntFlag{Name: "limit", Value: palette.MaxColors, Usage: "maximum palette size"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		frames, err := loadFrames(c.Args().Slice())
		if err != nil {
			return cli.Exit(err, 1)
		}

		p, err := paletteer.New(c.String("db"), logger(c))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer p.Close()

		s, err := p.Analyze(frames, c.Int("threshold"), c.Int("limit"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Printf("%d colors, checksum %08X\n", s.ColorCount, checksum.Frames(frames))
		return nil
	},
}

var exactCommand = &cli.Command{
	Name:      "exact",
	Usage:     "Build the nearest-color index for a literal JSON palette",
	ArgsUsage: "PALETTE.json FILE",
	Action: func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		raw, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return cli.Exit(err, 1)
		}
		var rgba []uint32
		if err := json.Unmarshal(raw, &rgba); err != nil {
			return cli.Exit(err, 1)
		}

		frames, err := loadFrames([]string{c.Args().Get(1)})
		if err != nil {
			return cli.Exit(err, 1)
		}

		p, err := paletteer.New(c.String("db"), logger(c))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer p.Close()

		s := palette.Exact(rgba, len(rgba))
		sum := fmt.Sprintf("%08X", checksum.Frames(frames))
		if err := p.PutExact(sum, len(rgba), s); err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Printf("%d colors, checksum %s\n", s.ColorCount, sum)
		return nil
	},
}

var mediancutCommand = &cli.Command{
	Name:      "mediancut",
	Usage:     "Derive a palette from one or more images by median-cut",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "limit", Value: palette.MaxColors, Usage: "maximum palette size"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		frames, err := loadFrames(c.Args().Slice())
		if err != nil {
			return cli.Exit(err, 1)
		}

		p, err := paletteer.New(c.String("db"), logger(c))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer p.Close()

		s, err := p.MedianCut(frames, c.Int("limit"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Printf("%d colors, checksum %08X\n", s.ColorCount, checksum.Frames(frames))
		return nil
	},
}

var algorithms = map[string]dither.Algorithm{
	"none":      dither.None,
	"gradient":  dither.GradientNoise,
	"pattern":   dither.Pattern,
	"chaotic":   dither.ChaoticNoise,
	"diffusion": dither.Diffusion,
	"bluenoise": dither.BlueNoise,
	"scatter":   dither.Scatter,
}

var ditherCommand = &cli.Command{
	Name:      "dither",
	Usage:     "Apply a dither using the most recently analyzed/exact palette for FILE",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "algo", Value: "scatter", Usage: "none,gradient,pattern,chaotic,diffusion,bluenoise,scatter"},
		&cli.Float64Flag{Name: "strength", Value: 1.0, Usage: "dither strength multiplier"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "output PNG path"},
		&cli.IntFlag{Name: "threshold", Value: 150, Usage: "threshold used to derive the cached palette"},
		&cli.IntFlag{Name: "limit", Value: palette.MaxColors, Usage: "limit used to derive the cached palette"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		algo, ok := algorithms[c.String("algo")]
		if !ok {
			return cli.Exit(fmt.Errorf("unknown algorithm %q", c.String("algo")), 1)
		}

		frames, err := loadFrames([]string{c.Args().First()})
		if err != nil {
			return cli.Exit(err, 1)
		}

		p, err := paletteer.New(c.String("db"), logger(c))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer p.Close()

		s, ok, err := p.Lookup(frames, c.Int("threshold"), c.Int("limit"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		if !ok {
			return cli.Exit(errors.New("no cached palette for this file; run analyze, mediancut, or exact first"), 1)
		}
		s.SetDitherStrength(c.Float64("strength"))

		p.Dither(s, frames[0], algo)

		out, err := os.Create(c.String("out"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer out.Close()

		rgba, ok := frames[0].(*frame.RGBA)
		if !ok {
			return cli.Exit(errors.New("unexpected frame type"), 1)
		}
		if err := writePNG(out, rgba); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}

var cacheCommand = &cli.Command{
	Name:  "cache",
	Usage: "Inspect or clear the palette cache",
	Subcommands: []*cli.Command{
		{
			Name: "list",
			Action: func(c *cli.Context) error {
				p, err := paletteer.New(c.String("db"), logger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer p.Close()

				checksums, err := p.ListCache()
				if err != nil {
					return cli.Exit(err, 1)
				}
				for _, sum := range checksums {
					fmt.Println(sum)
				}
				return nil
			},
		},
		{
			Name: "clear",
			Action: func(c *cli.Context) error {
				p, err := paletteer.New(c.String("db"), logger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer p.Close()

				return p.ClearCache()
			},
		},
	},
}
