package constant

// Markers used to recognise Kaltura stream manifests in observed request URLs.
const (
	ManifestExtension = ".m3u8"
	ManifestEndpoint  = "playManifest"
)

// Default request hosts the browser extension observes.
var DefaultCaptureHosts = []string{
	"*.kaltura.switch.ch",
	"*.kaltura.zhaw.ch",
	"api.kaltura.switch.ch",
}

// Defaults for name and command generation.
const (
	DefaultNameFallback  = "video"
	DefaultNameMaxLength = 80
	DefaultExtension     = "mp4"
	DefaultOutputDir     = "~/Downloads"
	DefaultBinary        = "ffmpeg"
	DateLayout           = "2006-01-02"
)
