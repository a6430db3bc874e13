package domain

// Configuration keys understood by creational.
const (
	// SettingVerbose enables verbose narration.
	SettingVerbose = "logging.verbose"

	// SettingDefaultDrink names the drink made when none is given.
	SettingDefaultDrink = "drinks.default"

	// SettingJSONOutput makes commands print JSON by default.
	SettingJSONOutput = "output.json"
)

// SettingKind is the value type of a configuration key.
type SettingKind int

const (
	// SettingKindString holds free text.
	SettingKindString SettingKind = iota
	// SettingKindBool holds true or false.
	SettingKindBool
)

// KnownSettings maps every configuration key to its value type.
var KnownSettings = map[string]SettingKind{
	SettingVerbose:      SettingKindBool,
	SettingDefaultDrink: SettingKindString,
	SettingJSONOutput:   SettingKindBool,
}

// Settings is the typed view of the configuration.
type Settings struct {
	Verbose      bool   `json:"verbose"`
	DefaultDrink string `json:"default_drink"`
	JSONOutput   bool   `json:"json_output"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DefaultDrink: "Tea",
	}
}
