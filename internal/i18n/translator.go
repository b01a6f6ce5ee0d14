package i18n

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/twogather/twogather/internal/lib/logger/sl"
)

//go:embed active.*.toml
var localeFS embed.FS

var supported = []language.Tag{language.Korean, language.English}

var matcher = language.NewMatcher(supported)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

// NewTranslator builds a Translator backed by the embedded active.*.toml
// catalogs, using defaultLocale (e.g. "ko") as the fallback language.
func NewTranslator(defaultLocale string, log *slog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Korean
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.ko.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Error("i18n: failed to load catalog", slog.String("file", file), sl.Err(err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// DefaultLocale returns the fallback locale as a BCP 47 string.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Warn("i18n: localize failed",
			slog.String("key", key),
			slog.Any("locales", languages),
			sl.Err(err),
		)
		return key
	}
	return msg
}

// FormatAmount renders an integer won amount with locale grouping, e.g. 15000 -> "15,000".
func FormatAmount(locale string, amount int64) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Korean
	}
	return message.NewPrinter(tag).Sprintf("%d", amount)
}

// LocaleFromRequest picks the best supported locale from Accept-Language,
// or fallback when the header is absent or unparseable.
func LocaleFromRequest(r *http.Request, fallback string) string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	base, _ := supported[idx].Base()
	return base.String()
}
