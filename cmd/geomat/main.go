package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/katalvlaran/geomat/matrix"
)

// config holds the environment-driven settings. Flags override these.
type config struct {
	Locale    string `envconfig:"LOCALE" default:"en-US"`
	OutLocale string `envconfig:"OUT_LOCALE" default:""`
	Dev       bool   `envconfig:"DEV" default:"false"`
}

func main() {
	var cfg config
	if err := envconfig.Process("geomat", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "geomat: config: %v\n", err)
		os.Exit(1)
	}

	in := flag.String("in", "-", "input file, '-' for stdin")
	op := flag.String("op", "none", "operation: none, invert, transpose, negate, affine")
	locale := flag.String("locale", cfg.Locale, "input number locale (BCP 47 tag)")
	outLocale := flag.String("out-locale", cfg.OutLocale, "output number locale, defaults to the input locale")
	dev := flag.Bool("dev", cfg.Dev, "development logging (colored, debug level)")
	flag.Parse()

	logger := newLogger(*dev)
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *in, *op, *locale, *outLocale); err != nil {
		logger.Error("geomat failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds the stderr logger. The output stream stays reserved
// for the rendered matrix.
func newLogger(dev bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "geomat: logger: %v\n", err)
		os.Exit(1)
	}

	return logger
}

// run is the load → operate → render pipeline.
func run(logger *zap.Logger, in, op, locale, outLocale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("locale %q: %w", locale, err)
	}
	outTag := tag
	if outLocale != "" {
		if outTag, err = language.Parse(outLocale); err != nil {
			return fmt.Errorf("out-locale %q: %w", outLocale, err)
		}
	}

	m, err := readMatrix(in, tag)
	if err != nil {
		return err
	}
	logger.Info("matrix loaded",
		zap.String("source", in),
		zap.Int("rows", m.NumRows()),
		zap.Int("cols", m.NumCols()),
		zap.String("locale", tag.String()),
	)

	switch op {
	case "none":
	case "invert":
		if err := m.Invert(); err != nil {
			return err
		}
	case "transpose":
		m.Transpose()
	case "negate":
		m.Negate()
	case "affine":
		a, err := matrix.ToAffine2D(m)
		if err != nil {
			return err
		}
		_, err = fmt.Printf("scaleX=%g shearX=%g translateX=%g\nshearY=%g scaleY=%g translateY=%g\n",
			a.ScaleX, a.ShearX, a.TranslateX, a.ShearY, a.ScaleY, a.TranslateY)

		return err
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	logger.Info("matrix ready", zap.String("op", op))
	_, err = io.WriteString(os.Stdout, matrix.Render(m, outTag))

	return err
}

// readMatrix loads from a file path or, for "-", from standard input.
func readMatrix(in string, tag language.Tag) (*matrix.General, error) {
	if in == "-" {
		return matrix.Load(os.Stdin, tag)
	}

	f, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return matrix.Load(f, tag)
}
