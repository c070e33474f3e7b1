package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// ViewFlags select the window of the image a command works on.

func ViewFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "range",
			Usage: "Window of the image to inspect (lo..hi, lo..=hi, lo.., ..hi, ..); decimal or 0x hex",
			Value: "..",
		},
		cli.BoolFlag{
			Name:  "absolute",
			Usage: "Interpret --range as absolute file offsets instead of the default relative view",
		},
	}
}

// ReadFlags address a single value inside the window.
func ReadFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "offset",
			Usage: "Offset of the value, relative to the window",
			Value: "0",
		},
		cli.StringFlag{
			Name:  "type",
			Usage: "Value type (u8|i8|u16|i16|u32|i32|f32)",
			Value: "u32",
		},
	}
}

// SearchFlags drive the whole-image scans.
func SearchFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "type",
			Usage: "Value type to search for (u8|i8|u16|i16|u32|i32)",
			Value: "u32",
		},
		cli.StringFlag{
			Name:  "value",
			Usage: "Value to search for; decimal, negative or 0x hex",
		},
		cli.StringFlag{
			Name:  "target",
			Usage: "Absolute offset that pointers should reference",
		},
	}
}
