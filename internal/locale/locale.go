package locale

import "strings"

// Locale is a supported site language.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// Default is the locale the site renders in when the client states no
// preference. The community is Arabic-first.
const Default = Arabic

// Supported lists every locale the site ships translations for.
var Supported = []Locale{Arabic, English}

// Parse maps a raw language tag to a supported locale, falling back to the
// default. Tags like "en-US" match on their primary subtag.
func Parse(raw string) Locale {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(tag, "-_,;"); i > 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case Arabic, English:
		return Locale(tag)
	default:
		return Default
	}
}

// Canonical troop keys. These are the only values a validated scout record
// may carry in its group field.
const (
	TroopAdvanced       = "troopAdvanced"
	TroopBoyScouts      = "troopBoyScouts"
	TroopCubScouts      = "troopCubScouts"
	TroopAdvancedGuides = "troopAdvancedGuides"
	TroopGirlGuides     = "troopGirlGuides"
	TroopBrownies       = "troopBrownies"
)

// GroupKeys lists the six canonical troop keys in display order.
var GroupKeys = []string{
	TroopAdvanced,
	TroopBoyScouts,
	TroopCubScouts,
	TroopAdvancedGuides,
	TroopGirlGuides,
	TroopBrownies,
}

var groupNames = map[Locale]map[string]string{
	English: {
		TroopAdvanced:       "Advanced Scouts",
		TroopBoyScouts:      "Boy Scouts",
		TroopCubScouts:      "Cub Scouts",
		TroopAdvancedGuides: "Advanced Guides",
		TroopGirlGuides:     "Girl Guides",
		TroopBrownies:       "Brownies",
	},
	Arabic: {
		TroopAdvanced:       "الجوالة",
		TroopBoyScouts:      "الكشافة",
		TroopCubScouts:      "الأشبال",
		TroopAdvancedGuides: "الرائدات",
		TroopGirlGuides:     "المرشدات",
		TroopBrownies:       "الزهرات",
	},
}

// Payment status words per locale.
var statusWords = map[Locale]map[string]string{
	English: {"paid": "paid", "due": "due"},
	Arabic:  {"paid": "مدفوع", "due": "مستحق"},
}

// groupLookup maps every lower-cased canonical key and every lower-cased
// localized display string (all locales) back to its canonical key. Built
// once at package init so CSV import can resolve group cells from files
// exported under either language.
var groupLookup = buildGroupLookup()

func buildGroupLookup() map[string]string {
	m := make(map[string]string, len(GroupKeys)*(len(Supported)+1))
	for _, key := range GroupKeys {
		m[strings.ToLower(key)] = key
		for _, loc := range Supported {
			if name, ok := groupNames[loc][key]; ok {
				m[strings.ToLower(strings.TrimSpace(name))] = key
			}
		}
	}
	return m
}

// GroupDisplayName returns the localized display string for a canonical
// troop key. Unknown keys are returned unchanged so stale data still
// renders something.
func GroupDisplayName(key string, loc Locale) string {
	if name, ok := groupNames[loc][key]; ok {
		return name
	}
	return key
}

// ResolveGroupKey maps a raw group value (canonical key or localized display
// string in any supported locale, case-insensitive) to its canonical key.
// Unmatched values are returned as-is with ok=false; callers must not reject
// a record solely because the group did not resolve.
func ResolveGroupKey(raw string) (string, bool) {
	key, ok := groupLookup[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return raw, false
	}
	return key, true
}

// IsCanonicalGroup reports whether key is one of the six troop keys.
func IsCanonicalGroup(key string) bool {
	for _, k := range GroupKeys {
		if k == key {
			return true
		}
	}
	return false
}

// StatusWord returns the localized word for a payment status ("paid"/"due").
func StatusWord(status string, loc Locale) string {
	if word, ok := statusWords[loc][status]; ok {
		return word
	}
	return status
}

// NormalizeStatus maps a raw status cell to "paid" or "due" by matching the
// known tokens of every supported locale. Unrecognized input defaults to
// "due"; an unpaid month is the safe assumption.
func NormalizeStatus(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	for _, loc := range Supported {
		if strings.EqualFold(statusWords[loc]["paid"], token) {
			return "paid"
		}
		if strings.EqualFold(statusWords[loc]["due"], token) {
			return "due"
		}
	}
	return "due"
}
