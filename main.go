// Command widgetkit runs the widget demos from the command line or a
// gallery window.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"widgetkit/internal/cli"
	"widgetkit/internal/config"
)

func main() {
	root := cli.NewRootCommand(func(cfg config.Config, log zerolog.Logger) cli.Dialogs {
		return cli.NewFyneDialogs(app.NewWithID("com.widgetkit.gallery"), cfg, log)
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
