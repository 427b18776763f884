package shrinkwrap

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Batch-convert image assets and rewrite references"
	MsgConvertShort    = "Convert images, back up originals, rewrite references"
	MsgStatusShort     = "Show what the next convert run would do"
	MsgInitShort       = "Create a shrinkwrap.toml config file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigCreated  = "Created %s\n"
	MsgNoConfigPrompt = "No shrinkwrap.toml found. Create one now?"

	// Error messages
	MsgErrConvert = "conversion run failed: %w"
	MsgErrStatus  = "failed to get status: %w"
	MsgErrInit    = "failed to create config: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Classify and report without changing anything"
	MsgFlagInput   = "Directory scanned for image assets"
	MsgFlagOutput  = "Backup directory for untouched originals"
	MsgFlagFormat  = "Target format: png, jpeg, jpg, or webp"
	MsgFlagQuality = "Quality tier: small (80) or smallest (60)"
	MsgFlagWorkDir = "Directory whose text files get references rewritten"
	MsgFlagForce   = "Overwrite an existing config file"
)

// Embedded message files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
