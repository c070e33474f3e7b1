package launcher

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-fancyslice/fancy"
	"github.com/rony4d/go-fancyslice/flags"
	"github.com/rony4d/go-fancyslice/utils/bound"
)

var (
	// ErrOutOfBounds is returned when a command addresses bytes outside the image.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrMissingArgument is returned when a required flag was not given.
	ErrMissingArgument = errors.New("missing argument")
)

const hexRow = 16

// action is a command body that works on an already opened window.
type action func(ctx *cli.Context, cfg Config, view fancy.Debug, log *logrus.Logger) error

func commands() []cli.Command {
	view := flags.CommandFlags(flags.CommonFlags(), flags.ViewFlags())
	read := flags.CommandFlags(flags.CommonFlags(), flags.ViewFlags(), flags.ReadFlags())
	search := flags.CommandFlags(flags.CommonFlags(), flags.SearchFlags())

	return []cli.Command{
		{
			Name:      "info",
			Usage:     "Print the image size and the selected window",
			ArgsUsage: "<image>",
			Flags:     view,
			Action:    guarded(infoCmd),
		},
		{
			Name:      "hex",
			Usage:     "Dump the window as hex words with a printable column",
			ArgsUsage: "<image>",
			Flags:     view,
			Action:    guarded(hexCmd),
		},
		{
			Name:      "ascii",
			Usage:     "Print the window with non-printable bytes shown as '.'",
			ArgsUsage: "<image>",
			Flags:     view,
			Action:    guarded(asciiCmd),
		},
		{
			Name:      "bytes",
			Usage:     "Print the window as one 0x prefixed hex string",
			ArgsUsage: "<image>",
			Flags:     view,
			Action:    guarded(bytesCmd),
		},
		{
			Name:      "read",
			Usage:     "Decode one big-endian scalar at --offset",
			ArgsUsage: "<image>",
			Flags:     read,
			Action:    guarded(readCmd),
		},
		{
			Name:      "str",
			Usage:     "Read the NUL-terminated string at --offset",
			ArgsUsage: "<image>",
			Flags:     read,
			Action:    guarded(strCmd),
		},
		{
			Name:      "find",
			Usage:     "List every absolute offset holding --value as a big-endian --type",
			ArgsUsage: "<image>",
			Flags:     search,
			Action:    guarded(findCmd),
		},
		{
			Name:      "pointers",
			Usage:     "List u32 fields that point at --target, absolutely or self-relatively",
			ArgsUsage: "<image>",
			Flags:     search,
			Action:    guarded(pointersCmd),
		},
	}
}

// guarded builds the config, logger and window for fn, and turns a bounds
// panic raised while fn runs into ErrOutOfBounds.
func guarded(fn action) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) (err error) {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg.Logging, cfg.Sentry, ctx.App.ErrWriter)
		if err != nil {
			return err
		}
		img, err := OpenImage(cfg.View.Path)
		if err != nil {
			return err
		}
		defer img.Close()

		defer func() {
			if r := recover(); r != nil {
				re, ok := r.(runtime.Error)
				if !ok {
					panic(r)
				}
				err = fmt.Errorf("%w: %v", ErrOutOfBounds, re)
				log.WithFields(logrus.Fields{
					"image":   img.Path(),
					"command": ctx.Command.Name,
				}).Error(err)
			}
		}()

		view := window(fancy.NewDebug(img.Bytes()), cfg.View)
		log.WithFields(logrus.Fields{
			"image":  img.Path(),
			"window": view.String(),
		}).Debug("Opened image")
		return fn(ctx, cfg, view, log)
	}
}

func window(root fancy.Debug, cfg ViewConfig) fancy.Debug {
	if cfg.Absolute {
		return root.AbsoluteSlice(cfg.Range)
	}
	return root.RelativeSlice(cfg.Range)
}

func infoCmd(ctx *cli.Context, cfg Config, view fancy.Debug, _ *logrus.Logger) error {
	w := ctx.App.Writer
	fmt.Fprintf(w, "image  %s\n", cfg.View.Path)
	fmt.Fprintf(w, "window %s\n", view)
	fmt.Fprintf(w, "start  %s\n", hexutil.EncodeUint64(uint64(view.Offset())))
	fmt.Fprintf(w, "length %d\n", view.Len())
	return nil
}

func hexCmd(ctx *cli.Context, _ Config, view fancy.Debug, _ *logrus.Logger) error {
	w := ctx.App.Writer
	for row := 0; row < view.Len(); row += hexRow {
		end := row + hexRow
		if end > view.Len() {
			end = view.Len()
		}
		r := bound.Span(row, end)
		fmt.Fprintf(w, "%08x  %-39s  %s\n", view.Offset()+row, view.Hex(r), view.ASCII(r))
	}
	return nil
}

func asciiCmd(ctx *cli.Context, _ Config, view fancy.Debug, _ *logrus.Logger) error {
	fmt.Fprintln(ctx.App.Writer, view.ASCII(bound.Full()))
	return nil
}

func bytesCmd(ctx *cli.Context, _ Config, view fancy.Debug, _ *logrus.Logger) error {
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(view.RelativeBytes(bound.Full())))
	return nil
}

func readCmd(ctx *cli.Context, cfg Config, view fancy.Debug, _ *logrus.Logger) error {
	off := cfg.View.Offset
	var v interface{}
	switch cfg.View.Type {
	case "u8":
		v = view.U8(off)
	case "i8":
		v = view.I8(off)
	case "u16":
		v = view.U16BE(off)
	case "i16":
		v = view.I16BE(off)
	case "u32":
		v = view.U32BE(off)
	case "i32":
		v = view.I32BE(off)
	case "f32":
		v = view.F32BE(off)
	default:
		return fmt.Errorf("%w: %q", ErrBadType, cfg.View.Type)
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s %v\n", hexutil.EncodeUint64(uint64(view.Offset()+off)), cfg.View.Type, v)
	return nil
}

func strCmd(ctx *cli.Context, cfg Config, view fancy.Debug, _ *logrus.Logger) error {
	s, err := view.Str(cfg.View.Offset)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, s)
	return nil
}

func findCmd(ctx *cli.Context, cfg Config, view fancy.Debug, log *logrus.Logger) error {
	if !cfg.Search.HasValue {
		return fmt.Errorf("%w: --value", ErrMissingArgument)
	}
	hits, err := findValue(view, cfg.View.Type, cfg.Search.Value)
	if err != nil {
		return err
	}
	for _, off := range hits {
		fmt.Fprintln(ctx.App.Writer, hexutil.EncodeUint64(uint64(off)))
	}
	log.WithFields(logrus.Fields{
		"type":    cfg.View.Type,
		"value":   cfg.Search.Value,
		"matches": len(hits),
	}).Info("Search complete")
	return nil
}

// findValue dispatches to the typed scan after checking v fits the type.
func findValue(view fancy.Debug, typ string, v int64) ([]int, error) {
	fits := func(lo, hi int64) error {
		if v < lo || v > hi {
			return fmt.Errorf("%w: %d does not fit %s", ErrBadNumber, v, typ)
		}
		return nil
	}
	switch typ {
	case "u8":
		if err := fits(0, math.MaxUint8); err != nil {
			return nil, err
		}
		return view.FindU8(uint8(v)), nil
	case "i8":
		if err := fits(math.MinInt8, math.MaxInt8); err != nil {
			return nil, err
		}
		return view.FindI8(int8(v)), nil
	case "u16":
		if err := fits(0, math.MaxUint16); err != nil {
			return nil, err
		}
		return view.FindU16(uint16(v)), nil
	case "i16":
		if err := fits(math.MinInt16, math.MaxInt16); err != nil {
			return nil, err
		}
		return view.FindI16(int16(v)), nil
	case "u32":
		if err := fits(0, math.MaxUint32); err != nil {
			return nil, err
		}
		return view.FindU32(uint32(v)), nil
	case "i32":
		if err := fits(math.MinInt32, math.MaxInt32); err != nil {
			return nil, err
		}
		return view.FindI32(int32(v)), nil
	}
	return nil, fmt.Errorf("%w: cannot search for %q", ErrBadType, typ)
}

func pointersCmd(ctx *cli.Context, cfg Config, view fancy.Debug, log *logrus.Logger) error {
	if !cfg.Search.HasTarget {
		return fmt.Errorf("%w: --target", ErrMissingArgument)
	}
	res := view.SearchPointers(cfg.Search.Target)
	w := ctx.App.Writer
	for _, off := range res.Absolute {
		fmt.Fprintf(w, "absolute %s\n", hexutil.EncodeUint64(uint64(off)))
	}
	for _, off := range res.Relative {
		fmt.Fprintf(w, "relative %s\n", hexutil.EncodeUint64(uint64(off)))
	}
	log.WithFields(logrus.Fields{
		"target":   hexutil.EncodeUint64(uint64(cfg.Search.Target)),
		"absolute": len(res.Absolute),
		"relative": len(res.Relative),
	}).Info("Pointer search complete")
	return nil
}
