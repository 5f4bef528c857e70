// Package cli wires the folio commands.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seanlgirgis/folio/internal/version"
	"github.com/seanlgirgis/folio/pkg/build"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/ui"
)

// globals are the persistent flag values shared by every command.
type globals struct {
	verbosity    int
	dir          string
	outputFormat string

	// buildOptions are passed to every builder; tests use it to swap the
	// paginator.
	buildOptions []build.Option
}

func (g *globals) format() (ui.Format, error) {
	return ui.ParseFormat(g.outputFormat)
}

// resolveFormat turns auto into the format detected for w.
func resolveFormat(f ui.Format, w io.Writer) ui.Format {
	if file, ok := w.(*os.File); ok {
		return ui.Resolve(f, file)
	}
	if f == ui.FormatAuto {
		return ui.FormatText
	}
	return f
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...build.Option) *cobra.Command {
	initTemplateFormatting()

	g := &globals{buildOptions: opts}

	rootCmd := &cobra.Command{
		Use:     "folio",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", ".", MsgFlagDir)
	rootCmd.PersistentFlags().StringVarP(&g.outputFormat, "output-format", "o", "auto", MsgFlagOutputFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newPreviewCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
