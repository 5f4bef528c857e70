package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render declarative documents to DOCX, HTML, PDF and Markdown"
	MsgRenderShort     = "Render targets to their output formats"
	MsgPreviewShort    = "Preview a layout in the terminal"
	MsgGenConfigShort  = "Write a starter project configuration and style"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgFileWritten = "Wrote %s"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir          = "Project directory holding folio.yaml"
	MsgFlagOutputFormat = "Result output format (auto, term, text, json)"
	MsgFlagTarget       = "Target to render, repeatable (default all)"
	MsgFlagFormat       = "Output format to render: docx, html, md, pdf (default the target's own)"
	MsgFlagOutputDir    = "Override the configured output directory"
	MsgFlagMarkdown     = "Preview the Markdown output styled for the terminal"
	MsgFlagWidth        = "Preview width in columns"
	MsgFlagStyle        = "Style file to preview with (overrides the project style)"
	MsgFlagStyleFormat  = "Starter style format (yaml or toml)"
	MsgFlagForce        = "Overwrite existing files"
	MsgFlagStdout       = "Print the starter folio.yaml instead of writing files"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimSpace(msgRenderExampleRaw)

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
