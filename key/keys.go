// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Naming - these keys control how output filenames are derived from page titles.
const (
	NamingMaxLength = "naming.max_length"
	NamingStrategy  = "naming.strategy"
	NamingExtension = "naming.extension"
)

// Command synthesis - these keys shape the generated ffmpeg invocation.
const (
	CommandOutputDir   = "command.output_dir"
	CommandQuotePolicy = "command.quote_policy"
	CommandBinary      = "command.binary"
)

// Capture - these keys filter which observed requests may populate the registry.
const (
	CaptureHosts = "capture.hosts"
)

// Local bridge server used by the browser extension.
const (
	ServerHost = "server.host"
	ServerPort = "server.port"
)

// Output sinks.
const (
	ClipboardCopy = "clipboard.copy"
	HistorySave   = "history.save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
