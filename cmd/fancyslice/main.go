package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-fancyslice/cmd/fancyslice/launcher"
)

func main() {

	err := launcher.Launch(os.Args)

	if err != nil {

		// Report the issue to stderr so the command output stays clean
		fmt.Fprintln(os.Stderr, "Error:", err)

		os.Exit(1)
		return
	}

}
