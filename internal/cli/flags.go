package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile string

	FromLang string
	ToLang   string
	URL      string
	Debug    bool

	// TranslatorAPI selects the translation backend: deepl, openai or
	// gemini.
	TranslatorAPI string

	// NoBrowser suppresses opening result and signup URLs in the
	// default browser.
	NoBrowser bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TranslatorAPI: "deepl",
	}
}
