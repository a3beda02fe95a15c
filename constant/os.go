package constant

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// FFmpegInstallHints maps a platform to the command that installs ffmpeg on it.
var FFmpegInstallHints = map[string]string{
	Darwin:  "brew install ffmpeg",
	Linux:   "sudo apt install ffmpeg",
	Windows: "winget install ffmpeg",
}
