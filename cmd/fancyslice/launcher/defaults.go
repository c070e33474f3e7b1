package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before flags override them.

type Defaults struct {
	View    ViewDefaults
	Logging LoggingDefaults
	Sentry  SentryDefaults
}

// ViewDefaults selects which part of an image a command inspects.
type ViewDefaults struct {
	Range    string //	Window of the image, in lo..hi notation. ".." covers everything.
	Absolute bool   //	Whether Range counts from the start of the file rather than from the default relative view.
	Offset   string //	Offset of a single value inside the window.
	Type     string //	Scalar type used by read and find (u8, i8, u16, i16, u32, i32, f32).
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs.
}

// SentryDefaults configures error forwarding.
type SentryDefaults struct {
	DSN string //	Empty disables the hook.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		View: ViewDefaults{
			Range:    "..",
			Absolute: false,
			Offset:   "0",
			Type:     "u32",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Sentry: SentryDefaults{},
	}
}
