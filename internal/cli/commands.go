package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seanlgirgis/folio/internal/version"
	"github.com/seanlgirgis/folio/pkg/build"
	"github.com/seanlgirgis/folio/pkg/config"
	"github.com/seanlgirgis/folio/pkg/content"
	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/preview"
	"github.com/seanlgirgis/folio/pkg/theme"
	"github.com/seanlgirgis/folio/pkg/ui"
)

// all selects every target or format.
const all = "all"

func dropAll(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v == all {
			return nil
		}
		out = append(out, v)
	}
	return out
}

func newRenderCmd(g *globals) *cobra.Command {
	var (
		targets   []string
		formats   []string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := g.format()
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if outputDir != "" {
				overrides["output_dir"] = outputDir
			}
			cfg, err := config.LoadWithOverrides(g.dir, overrides)
			if err != nil {
				return err
			}

			b, err := build.New(cfg, g.buildOptions...)
			if err != nil {
				return err
			}

			log.Info().
				Str("root", cfg.Root).
				Strs("targets", targets).
				Strs("formats", formats).
				Msg("Rendering")

			report, err := b.Build(cmd.Context(), dropAll(targets), dropAll(formats))
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(resolveFormat(format, cmd.OutOrStdout()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := renderer.RenderReport(report); err != nil {
				return err
			}
			return report.Err()
		},
	}

	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, MsgFlagTarget)
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, MsgFlagFormat)
	cmd.Flags().StringVar(&outputDir, "output-dir", "", MsgFlagOutputDir)

	_ = cmd.RegisterFlagCompletionFunc("target", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(g.dir)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return append(cfg.TargetNames(), all), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return append(append([]string{}, config.Formats...), all), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newPreviewCmd(g *globals) *cobra.Command {
	var (
		markdown bool
		width    int
		style    string
	)

	cmd := &cobra.Command{
		Use:     "preview <layout>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := g.format()
			if err != nil {
				return err
			}

			th, doc, err := loadPreview(g, args[0])
			if err != nil {
				return err
			}
			if style != "" {
				if th, err = theme.Load(style); err != nil {
					return err
				}
			}

			out, err := preview.Render(doc, th, preview.Options{
				Format:   resolveFormat(format, cmd.OutOrStdout()),
				Width:    width,
				Markdown: markdown,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, MsgFlagMarkdown)
	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	cmd.Flags().StringVar(&style, "style", "", MsgFlagStyle)

	return cmd
}

// loadPreview resolves layout through the project in g.dir when there is
// one, and against the built-in theme otherwise.
func loadPreview(g *globals, layout string) (theme.Theme, *document.Document, error) {
	if _, found := config.FindProjectFile(g.dir); !found {
		doc, err := content.NewLoader(nil).Layout(layout)
		return theme.Default(), doc, err
	}

	cfg, err := config.Load(g.dir)
	if err != nil {
		return theme.Theme{}, nil, err
	}
	b, err := build.New(cfg, g.buildOptions...)
	if err != nil {
		return theme.Theme{}, nil, err
	}
	doc, err := b.Document(layout)
	return b.Theme(), doc, err
}

func newGenConfigCmd(g *globals) *cobra.Command {
	var (
		styleFormat string
		force       bool
		stdout      bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig [dir]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.StarterConfig())
				return err
			}

			format, err := g.format()
			if err != nil {
				return err
			}

			dir := g.dir
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := config.WriteStarter(filesystem.NewOS(), dir, styleFormat, force)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(resolveFormat(format, cmd.OutOrStdout()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, path := range written {
				if err := renderer.RenderMessage(fmt.Sprintf(MsgFileWritten, path)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&styleFormat, "style-format", "yaml", MsgFlagStyleFormat)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&stdout, "stdout", false, MsgFlagStdout)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "folio version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// ReportError prints err to stderr in the detected output format.
func ReportError(err error) {
	renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
	if rerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}
