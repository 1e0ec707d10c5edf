package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"folioapi/internal/i18n"
)

// LanguageLocalKey stores the negotiated language.Tag in Fiber's context locals.
const LanguageLocalKey = "lang"

// Language negotiates the response language from ?lang=, the language
// cookie and Accept-Language. An explicit ?lang= is remembered in a cookie.
func Language(resolver i18n.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag, persist := resolver.Resolve(
			c.Query(i18n.LangParam),
			c.Cookies(i18n.LangCookieName),
			c.Get(fiber.HeaderAcceptLanguage),
		)
		if persist {
			c.Cookie(&fiber.Cookie{
				Name:     i18n.LangCookieName,
				Value:    tag.String(),
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(LanguageLocalKey, tag)
		c.Set(fiber.HeaderContentLanguage, tag.String())
		c.Vary(fiber.HeaderAcceptLanguage)

		return c.Next()
	}
}

// GetLanguage returns the tag stored by Language, or the package default.
func GetLanguage(c *fiber.Ctx) language.Tag {
	if tag, ok := c.Locals(LanguageLocalKey).(language.Tag); ok {
		return tag
	}
	return i18n.Default()
}
