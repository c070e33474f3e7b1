// This file maps CLI context to the config struct the commands work from.

package launcher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-fancyslice/utils/bound"
)

var (
	// ErrNoImage is returned when a command is run without an image path.
	ErrNoImage = errors.New("no image path given")
	// ErrBadNumber is returned for offsets and values that do not parse.
	ErrBadNumber = errors.New("invalid number")
	// ErrBadType is returned for an unknown scalar type name.
	ErrBadType = errors.New("unknown value type")
)

// Config aggregates everything a command needs.
type Config struct {
	View    ViewConfig
	Search  SearchConfig
	Logging LoggingConfig
	Sentry  SentryConfig
}

type ViewConfig struct {
	Path     string
	Range    bound.Range
	Absolute bool
	Offset   int
	Type     string
}

type SearchConfig struct {
	Value     int64
	HasValue  bool
	Target    int
	HasTarget bool
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
}

type SentryConfig struct {
	DSN string
}

var scalarTypes = map[string]int{
	"u8":  1,
	"i8":  1,
	"u16": 2,
	"i16": 2,
	"u32": 4,
	"i32": 4,
	"f32": 4,
}

func defaultConfig() Config {
	d := DefaultConfig()
	r, err := bound.Parse(d.View.Range)
	if err != nil {
		panic(err)
	}
	return Config{
		View: ViewConfig{
			Range:    r,
			Absolute: d.View.Absolute,
			Type:     d.View.Type,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Sentry: SentryConfig{DSN: d.Sentry.DSN},
	}
}

// MakeAllConfigs merges defaults and CLI overrides into a single config struct.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	cfg.View.Path = ctx.Args().First()

	if ctx.IsSet("range") {
		r, err := bound.Parse(ctx.String("range"))
		if err != nil {
			return err
		}
		cfg.View.Range = r
	}
	if ctx.IsSet("absolute") {
		cfg.View.Absolute = ctx.Bool("absolute")
	}
	if ctx.IsSet("offset") {
		off, err := parseOffset(ctx.String("offset"))
		if err != nil {
			return err
		}
		cfg.View.Offset = off
	}
	if ctx.IsSet("type") {
		typ := strings.ToLower(ctx.String("type"))
		if _, ok := scalarTypes[typ]; !ok {
			return fmt.Errorf("%w: %q", ErrBadType, typ)
		}
		cfg.View.Type = typ
	}

	if ctx.IsSet("value") {
		v, err := strconv.ParseInt(ctx.String("value"), 0, 64)
		if err != nil {
			return fmt.Errorf("%w: value %q", ErrBadNumber, ctx.String("value"))
		}
		cfg.Search.Value = v
		cfg.Search.HasValue = true
	}
	if ctx.IsSet("target") {
		off, err := parseOffset(ctx.String("target"))
		if err != nil {
			return err
		}
		cfg.Search.Target = off
		cfg.Search.HasTarget = true
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.String("sentry.dsn")
	}
	return nil
}

func parseOffset(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: offset %q", ErrBadNumber, s)
	}
	return int(v), nil
}
