package locale

// Locale is a BCP 47 language tag selecting the display language.
type Locale string

// Supported locale constants. Unknown tags are still accepted everywhere:
// rendering falls back to the stored value, so there is no validity gate.
const (
	// English is the base locale; canonical values are stored in it.
	English            Locale = "en"
	TraditionalChinese Locale = "zh-Hant"
)

// Default is the locale used when a request does not name one.
const Default = English

// IsBase reports whether the locale is the base (storage) locale.
func (l Locale) IsBase() bool {
	return l == English || l == ""
}

// OrDefault returns the locale, or Default when empty.
func (l Locale) OrDefault() Locale {
	if l == "" {
		return Default
	}
	return l
}
