package config

import (
	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/key"
)

// Default holds every known field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys that can be overridden from the environment.
var EnvExposed []string

var fields = []Field{
	// naming
	{key.NamingMaxLength, constant.DefaultNameMaxLength, "Maximum length of the title part of generated filenames"},
	{key.NamingStrategy, "title", "Filename strategy.\nAvailable options are: title (title, date and url hash), legacy (kaltura_<entry id>_<date>)"},
	{key.NamingExtension, constant.DefaultExtension, "File extension of generated filenames"},

	// command
	{key.CommandOutputDir, constant.DefaultOutputDir, "Directory the generated command writes into.\nLeft unexpanded so the shell resolves ~"},
	{key.CommandQuotePolicy, "reject", "How stream URLs that would break shell quoting are handled.\nAvailable options are: reject, escape"},
	{key.CommandBinary, constant.DefaultBinary, "Executable used in generated commands"},

	// capture and bridge
	{key.CaptureHosts, constant.DefaultCaptureHosts, "Host patterns whose requests may be captured.\nLeave empty to accept any host"},
	{key.ServerHost, "127.0.0.1", "Address the extension bridge listens on"},
	{key.ServerPort, 0, "Port the extension bridge listens on.\n0 picks the first free port from 17170"},

	// output
	{key.ClipboardCopy, false, "Copy generated commands to the system clipboard"},
	{key.HistorySave, true, "Remember generated commands"},

	// cli
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, true, "Enable automatic version check"},

	// logs
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
}

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
