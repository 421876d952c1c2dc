package app

import (
	"flag"
	"io"

	"sandca/internal/config"
)

// Config represents the command-line parameters for the front-ends.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	LogLevel   string
	LogFile    string
	Overrides  config.KVList
	DumpConfig bool
}

// NewConfig returns a Config populated with the default settings.
func NewConfig() *Config {
	def := config.Default()
	return &Config{
		Sim:      def.Sim,
		Scale:    def.Scale,
		TPS:      def.TPS,
		Seed:     def.Seed,
		LogLevel: def.Log.Level,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML settings file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.Var(&c.Overrides, "set", "sim option in key=value form (repeatable)")
	fs.BoolVar(&c.DumpConfig, "dump-config", c.DumpConfig, "print the resolved settings as YAML and exit")
}

// WriteSettings encodes resolved settings as a YAML document that -config
// accepts.
func WriteSettings(w io.Writer, s config.Settings) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Resolve loads the settings file when one was given and layers every flag
// set explicitly on fs over it, followed by the -set overrides.
func (c *Config) Resolve(fs *flag.FlagSet) (config.Settings, error) {
	settings := config.Default()
	if c.ConfigPath != "" {
		loaded, err := config.Load(c.ConfigPath)
		if err != nil {
			return config.Settings{}, err
		}
		settings = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sim":
			settings.Sim = c.Sim
		case "scale":
			settings.Scale = c.Scale
		case "tps":
			settings.TPS = c.TPS
		case "seed":
			settings.Seed = c.Seed
		case "log-level":
			settings.Log.Level = c.LogLevel
		case "log-file":
			settings.Log.File = c.LogFile
		}
	})
	if err := settings.Merge(c.Overrides); err != nil {
		return config.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}
