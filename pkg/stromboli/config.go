package stromboli

import (
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
	"github.com/BurntSushi/toml"
)

// Options is the container configuration object. Supplying one selects
// stateful mode; it conflicts with an external navigation handle.
type Options struct {
	// URIPrefix overrides the delimiter used to split deep-link URLs into
	// prefix and path. Empty means the default "://".
	URIPrefix string `toml:"uri_prefix"`

	// LogPath is the full path for the log file, including filename.
	// Parent directories are created as needed.
	LogPath string `toml:"log_path"`

	// LogLevel sets the application log level ("debug", "info", "warn",
	// "error"). Empty means "info".
	LogLevel string `toml:"log_level"`
}

// LoadOptions reads container options from a TOML file. Fields absent from
// the file keep their zero values, which select the documented defaults.
func LoadOptions(path string) (*Options, error) {
	var opts Options
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return nil, NewInfrastructureError("load_options", err)
	}
	return &opts, nil
}

func (o *Options) apply(c *Container) {
	if o.URIPrefix != "" {
		c.uriPrefix = o.URIPrefix
	}
	if o.LogPath != "" {
		internal.SetLogPath(o.LogPath)
	}
	if o.LogLevel != "" {
		internal.SetRawLogLevel(o.LogLevel)
	}
}
