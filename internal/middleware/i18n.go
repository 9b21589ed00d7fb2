// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/i18n"
)

// Tags that name a catalogue under a different spelling.
var languageAliases = map[string]string{
	"zh_hant": "zh_TW",
	"zh_hk":   "zh_TW",
}

// I18nMiddleware maps the first Accept-Language tag onto a loaded catalogue.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}
	supported := i18n.GetSupportedLanguages()

	return func(c *gin.Context) {
		lang := defaultLang
		// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			if match, ok := matchLanguage(first, supported); ok {
				lang = match
			}
		}
		c.Set("lang", lang)
		c.Next()
	}
}

// matchLanguage tries the full tag, then its primary subtag ("en-GB" → "en").
func matchLanguage(tag string, supported []string) (string, bool) {
	tag = strings.ToLower(strings.ReplaceAll(tag, "-", "_"))
	if alias, ok := languageAliases[tag]; ok {
		return alias, true
	}
	primary := strings.SplitN(tag, "_", 2)[0]
	for _, candidate := range []string{tag, primary} {
		for _, lang := range supported {
			if strings.EqualFold(lang, candidate) {
				return lang, true
			}
		}
	}
	return "", false
}
