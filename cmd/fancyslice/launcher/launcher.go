package launcher

import (
	"github.com/rony4d/go-fancyslice/flags"
	"gopkg.in/urfave/cli.v1"
)

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := flags.NewApp()
	app.Commands = commands()
	return app
}
