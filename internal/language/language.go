package language

import "strings"

// SupportedFromLangs lists the language codes accepted for the original page.
var SupportedFromLangs = []string{
	"BG", // Bulgarian
	"CS", // Czech
	"DA", // Danish
	"DE", // German
	"EL", // Greek
	"EN", // English
	"ES", // Spanish
	"ET", // Estonian
	"FI", // Finnish
	"FR", // French
	"HU", // Hungarian
	"ID", // Indonesian
	"IT", // Italian
	"JA", // Japanese
	"LT", // Lithuanian
	"LV", // Latvian
	"NL", // Dutch
	"PL", // Polish
	"PT", // Portuguese
	"RO", // Romanian
	"RU", // Russian
	"SK", // Slovak
	"SL", // Slovenian
	"SV", // Swedish
	"TR", // Turkish
	"ZH", // Chinese
}

// SupportedToLangs lists the language codes accepted for the translated page.
var SupportedToLangs = []string{
	"BG",    // Bulgarian
	"CS",    // Czech
	"DA",    // Danish
	"DE",    // German
	"EL",    // Greek
	"EN-GB", // English (British)
	"EN-US", // English (American)
	"ES",    // Spanish
	"ET",    // Estonian
	"FI",    // Finnish
	"FR",    // French
	"HU",    // Hungarian
	"ID",    // Indonesian
	"IT",    // Italian
	"JA",    // Japanese
	"LT",    // Lithuanian
	"LV",    // Latvian
	"NL",    // Dutch
	"PL",    // Polish
	"PT-PT", // Portuguese (all varieties excluding Brazilian)
	"PT-BR", // Portuguese (Brazilian)
	"RO",    // Romanian
	"RU",    // Russian
	"SK",    // Slovak
	"SL",    // Slovenian
	"SV",    // Swedish
	"TR",    // Turkish
	"ZH",    // Chinese
}

// NormalizeFrom upper-cases code and reports whether it is a valid source
// language. The normalized code is returned either way so error messages
// can echo what was checked.
func NormalizeFrom(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	return normalized, contains(SupportedFromLangs, normalized)
}

// NormalizeTo upper-cases code and reports whether it is a valid
// destination language.
func NormalizeTo(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	return normalized, contains(SupportedToLangs, normalized)
}

// PrintableFromLangs returns the source codes lower-cased and
// comma-joined, for help and error text.
func PrintableFromLangs() string {
	return printable(SupportedFromLangs)
}

// PrintableToLangs returns the destination codes lower-cased and
// comma-joined, for help and error text.
func PrintableToLangs() string {
	return printable(SupportedToLangs)
}

func printable(codes []string) string {
	lowered := make([]string, len(codes))
	for i, code := range codes {
		lowered[i] = strings.ToLower(code)
	}
	return strings.Join(lowered, ",")
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
