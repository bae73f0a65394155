// Package cli wires the command line to the demo dialogs.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"widgetkit/internal/config"
	"widgetkit/internal/export"
	"widgetkit/internal/format"
	"widgetkit/internal/logging"
)

// Env is what every command needs once the config has been loaded.
type Env struct {
	Config  config.Config
	Log     zerolog.Logger
	Dialogs Dialogs
}

// DialogsFunc creates the Dialogs used by the commands once the config is loaded.
type DialogsFunc func(cfg config.Config, log zerolog.Logger) Dialogs

// NewRootCommand builds the command tree. With no subcommand the gallery
// window opens.
func NewRootCommand(newDialogs DialogsFunc) *cobra.Command {
	var (
		configPath string
		env        Env
	)

	root := &cobra.Command{
		Use:           "widgetkit",
		Short:         "Desktop widget helpers and demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// hide the default "completion" subcommand
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			env.Config = cfg
			env.Log = logging.NewConsole(cfg.LogLevel)
			env.Dialogs = newDialogs(cfg, env.Log)
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			env.Dialogs.Gallery()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default $XDG_CONFIG_HOME/widgetkit/config.toml)")

	root.AddCommand(
		selectionCommand(&env, "checkbox", "Pick any number of labels with check boxes", func(labels []string) []string {
			return env.Dialogs.Checkbox("Checkbox menu", labels)
		}),
		radioCommand(&env),
		selectionCommand(&env, "shift", "Shift checked labels into an output pane", func(labels []string) []string {
			return env.Dialogs.Shift("Shift list", labels)
		}),
		popupCommand(&env),
		editorCommand(&env),
		&cobra.Command{
			Use:   "colors",
			Short: "Show the colour swatches",
			Args:  cobra.NoArgs,
			Run:   func(*cobra.Command, []string) { env.Dialogs.Colors() },
		},
		&cobra.Command{
			Use:   "hover",
			Short: "Show a button that reports hover events",
			Args:  cobra.NoArgs,
			Run:   func(*cobra.Command, []string) { env.Dialogs.Hover() },
		},
		&cobra.Command{
			Use:   "frame",
			Short: "Show a framed label with adjustable text size",
			Args:  cobra.NoArgs,
			Run:   func(*cobra.Command, []string) { env.Dialogs.Frame() },
		},
		promptCommand(&env),
		configCommand(&configPath),
	)

	return root
}

// labelsOrDefault drops blank arguments and falls back to the configured labels.
func labelsOrDefault(args []string, cfg config.Config) []string {
	labels := lo.Filter(args, func(s string, _ int) bool { return strings.TrimSpace(s) != "" })
	if len(labels) == 0 {
		return cfg.Labels
	}
	return labels
}

func selectionCommand(env *Env, name, short string, run func([]string) []string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   name + " [label...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := labelsOrDefault(args, env.Config)
			choice := run(labels)
			env.Log.Debug().Str("demo", name).Strs("choice", choice).Msg("dialog closed")
			fmt.Fprintln(cmd.OutOrStdout(), format.Choices(choice))
			return saveRecord(output, name, choice)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Append the result to BASE_DD.MM.YYYY.txt")
	return cmd
}

func radioCommand(env *Env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "radio [label...]",
		Short: "Pick exactly one label",
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := env.Dialogs.Radio("Radio menu", labelsOrDefault(args, env.Config))
			env.Log.Debug().Str("demo", "radio").Str("choice", choice).Msg("dialog closed")
			fmt.Fprintln(cmd.OutOrStdout(), format.Choice(choice))

			var labels []string
			if choice != "" {
				labels = []string{choice}
			}
			return saveRecord(output, "radio", labels)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Append the result to BASE_DD.MM.YYYY.txt")
	return cmd
}

func popupCommand(env *Env) *cobra.Command {
	var first, second string

	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Show a popup with two buttons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(first) == "" || strings.TrimSpace(second) == "" {
				return fmt.Errorf("popup: both button labels are required")
			}
			clicked := env.Dialogs.Popup(first, second)
			if clicked == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No button was clicked.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s was clicked.\n", clicked)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "Button 1", "Label of the first button")
	cmd.Flags().StringVar(&second, "second", "Button 2", "Label of the second button")
	return cmd
}

func editorCommand(env *Env) *cobra.Command {
	var title, text string

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Edit text until File > Finished, then print it",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			final := env.Dialogs.Editor(title, text)
			printBlock(cmd.OutOrStdout(), final)
		},
	}
	cmd.Flags().StringVar(&title, "title", "Simple editor", "Window title")
	cmd.Flags().StringVar(&text, "text", "", "Starting text")
	return cmd
}

func promptCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a file name",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			name := env.Dialogs.Prompt()
			if name == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No file name entered.")
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The file name is: %s\n", name)
		},
	}
}

// configCommand manages the config file itself, so it skips loading it.
func configCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "config",
		Short:             "Manage the config file",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func saveRecord(base, demo string, labels []string) error {
	if base == "" {
		return nil
	}
	now := time.Now()
	path := export.BuildPath(base, ".txt", now)
	return export.AppendTXT(path, export.Record{Time: now, Demo: demo, Labels: labels})
}

func printBlock(w io.Writer, text string) {
	if text == "" || strings.HasSuffix(text, "\n") {
		fmt.Fprint(w, text)
		return
	}
	fmt.Fprintln(w, text)
}
