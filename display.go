package pathtext

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// TextSource selects which text a Display resolves to.
type TextSource int

const (
	// SourcePrimary shows the primary text.
	SourcePrimary TextSource = iota
	// SourceTranslated shows the best-matching translation.
	SourceTranslated
	// SourceCustom shows free-form custom text.
	SourceCustom
)

// String returns the lowercase name of the source.
func (s TextSource) String() string {
	switch s {
	case SourceTranslated:
		return "translated"
	case SourceCustom:
		return "custom"
	default:
		return "primary"
	}
}

// ParseTextSource parses a source name as produced by String.
func ParseTextSource(s string) (TextSource, error) {
	switch s {
	case "", "primary":
		return SourcePrimary, nil
	case "translated":
		return SourceTranslated, nil
	case "custom":
		return SourceCustom, nil
	}
	return SourcePrimary, fmt.Errorf("pathtext: unknown text source %q", s)
}

// DisplayConfig carries the per-render display inputs: which text to
// show and whether characters follow the curve orientation.
type DisplayConfig struct {
	Source      TextSource
	Custom      string
	FollowCurve bool
}

// Display holds the texts a curve can show: a primary string and
// optional translations keyed by BCP 47 language tag ("en", "ja",
// "de-AT", ...).
type Display struct {
	Primary      string
	Translations map[string]string
}

// Text resolves the display string for cfg. For SourceTranslated the
// translation whose tag best matches the preferred languages is
// chosen, using standard BCP 47 matching; with no usable translations
// the primary text is returned instead. Unparsable translation tags
// are skipped.
func (d Display) Text(cfg DisplayConfig, prefs ...language.Tag) string {
	switch cfg.Source {
	case SourceCustom:
		return cfg.Custom
	case SourceTranslated:
		return d.translated(prefs)
	default:
		return d.Primary
	}
}

func (d Display) translated(prefs []language.Tag) string {
	if len(d.Translations) == 0 {
		return d.Primary
	}

	// Sorted keys keep matching deterministic across map iteration
	// order.
	keys := make([]string, 0, len(d.Translations))
	for k := range d.Translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tags []language.Tag
	var valid []string
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			Logger().Warn("pathtext: skipping malformed translation tag", "tag", k)
			continue
		}
		tags = append(tags, tag)
		valid = append(valid, k)
	}
	if len(tags) == 0 {
		return d.Primary
	}

	_, i, _ := language.NewMatcher(tags).Match(prefs...)
	return d.Translations[valid[i]]
}
