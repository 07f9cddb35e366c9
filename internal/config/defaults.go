package config

const (
	defaultFontDir        = "fonts/SubsetOTF"
	defaultGamedataDir    = "ArknightsGameData"
	defaultOutputDir      = "output"
	defaultRawKeysDir     = "raw_keys"
	defaultLocale         = "zh_CN"
	defaultDataExtension  = ".json"
	defaultShortThreshold = 7
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

var defaultFontExtensions = []string{".otf", ".ttf"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			FontDir:     defaultFontDir,
			GamedataDir: defaultGamedataDir,
			OutputDir:   defaultOutputDir,
			RawKeysDir:  defaultRawKeysDir,
		},
		Corpus: Corpus{
			Locale:         defaultLocale,
			FontExtensions: append([]string(nil), defaultFontExtensions...),
			DataExtension:  defaultDataExtension,
			ShortThreshold: defaultShortThreshold,
			UpdateBaseline: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
