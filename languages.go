package lingo

import "strings"

// LanguageNames maps locale identifiers to human-readable names for
// provider prompts.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German (Germany)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French (France)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
	"ar_SA": "Arabic (Saudi Arabia)",
	"cs_CZ": "Czech (Czech Republic)",
	"da_DK": "Danish (Denmark)",
	"el_GR": "Greek (Greece)",
	"fi_FI": "Finnish (Finland)",
	"he_IL": "Hebrew (Israel)",
	"hi_IN": "Hindi (India)",
	"hu_HU": "Hungarian (Hungary)",
	"id_ID": "Indonesian (Indonesia)",
	"ko_KR": "Korean (South Korea)",
	"nl_NL": "Dutch (Netherlands)",
	"nb_NO": "Norwegian Bokmål (Norway)",
	"pl_PL": "Polish (Poland)",
	"ro_RO": "Romanian (Romania)",
	"ru_RU": "Russian (Russia)",
	"sv_SE": "Swedish (Sweden)",
	"th_TH": "Thai (Thailand)",
	"tr_TR": "Turkish (Turkey)",
	"uk_UA": "Ukrainian (Ukraine)",
	"vi_VN": "Vietnamese (Vietnam)",
}

// ShortCodeToLocale maps short language codes to full locale identifiers.
var ShortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"pt": "pt_BR",
	"zh": "zh_CN",
	"ko": "ko_KR",
	"ru": "ru_RU",
	"ar": "ar_SA",
	"he": "he_IL",
	"hi": "hi_IN",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"tr": "tr_TR",
	"vi": "vi_VN",
}

// LanguageName returns the human-readable name for a locale identifier.
// Falls back to the identifier itself if not found.
func LanguageName(locale string) string {
	if name, ok := LanguageNames[locale]; ok {
		return name
	}
	// Unknown region: fall back to the default locale for the language part,
	// which also covers bare short codes.
	lang, _ := SplitLocale(locale)
	if full, ok := ShortCodeToLocale[lang]; ok {
		if name, ok := LanguageNames[full]; ok {
			return name
		}
	}
	return locale
}

// SplitLocale splits a two-part locale identifier into language and region
// (e.g., "es_ES" → "es", "ES"). Region is empty for bare language codes.
// The identifier is otherwise treated as opaque.
func SplitLocale(locale string) (lang, region string) {
	parts := strings.SplitN(locale, "_", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return locale, ""
}

// NormalizeLocale converts a locale identifier to the standard format
// (e.g., "es-ES" → "es_ES").
func NormalizeLocale(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}
