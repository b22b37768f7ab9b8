package config

const (
	defaultOutputDir   = "~/.local/share/substation/output"
	defaultLogDir      = "~/.local/share/substation/logs"
	defaultDatabaseDir = "~/.local/share/substation"

	defaultFontName  = "Arial"
	defaultFontSize  = 48
	defaultAlignment = "bottom"

	defaultVideoWidth  = 1920
	defaultVideoHeight = 1080

	defaultEpsilonSeconds  = 0.01
	defaultFallbackSeconds = 1.0

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			LogDir:      defaultLogDir,
			DatabaseDir: defaultDatabaseDir,
		},
		Style: Style{
			FontName:  defaultFontName,
			FontSize:  defaultFontSize,
			Alignment: defaultAlignment,
		},
		Video: Video{
			Width:  defaultVideoWidth,
			Height: defaultVideoHeight,
		},
		Normalize: Normalize{
			RepairEncoding:      true,
			ReplaceSmartQuotes:  true,
			CollapseLineBreaks:  true,
			StripAdvertisements: true,
		},
		Timing: Timing{
			EpsilonSeconds:  defaultEpsilonSeconds,
			FallbackSeconds: defaultFallbackSeconds,
		},
		Workflow: Workflow{
			QueuePollInterval:  5,
			ErrorRetryInterval: 10,
		},
		Notifications: Notifications{
			RequestTimeout: 10,
			Batch:          true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
