package config

// Config represents the stepkit producer settings document.
type Config struct {
	Version string  `yaml:"version" validate:"required,semver"`
	Logging Logging `yaml:"logging,omitempty"`
	WebView WebView `yaml:"webview,omitempty"`
}

// Logging configures the zerolog output of the recorder and CLI.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// WebView holds settings applied when a web view step is recorded.
type WebView struct {
	Sanitize  bool      `yaml:"sanitize"`
	Signature Signature `yaml:"signature,omitempty"`
}

// Signature describes how the signature block is added to captured markup.
type Signature struct {
	Selector   string `yaml:"selector,omitempty" validate:"required,max=200"`
	CSSClass   string `yaml:"css_class,omitempty" validate:"omitempty,css_class"`
	ImageAlt   string `yaml:"image_alt,omitempty" validate:"max=200"`
	ImageWidth string `yaml:"image_width,omitempty" validate:"omitempty,dimension"`
	DateFormat string `yaml:"date_format,omitempty" validate:"required"`
}

// Default returns the settings used when no configuration file is supplied.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Logging: Logging{Level: "info", HumanReadable: true},
		WebView: WebView{
			Sanitize: false,
			Signature: Signature{
				Selector:   "body",
				CSSClass:   "signature",
				ImageAlt:   "Signature",
				ImageWidth: "100%",
				DateFormat: "2006-01-02",
			},
		},
	}
}
