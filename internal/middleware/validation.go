package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Bounds for the trailing analysis window, in days.
const (
	MinWindowDays     = 7
	MaxWindowDays     = 365
	DefaultWindowDays = 30
)

var (
	// regionRe matches ISO 3166-1 alpha-2 region codes.
	regionRe = regexp.MustCompile(`^[A-Z]{2}$`)
	// langRe matches BCP 47-style language tags ("en", "zh-Hant", "pt-BR").
	langRe = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateRegion normalizes and checks a region code. Empty input falls back
// to the given default.
func ValidateRegion(region, fallback string) (string, string) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = fallback
	}
	if !regionRe.MatchString(region) {
		return "", "region must be a two-letter region code"
	}
	return region, ""
}

// ValidateLang checks a content language tag. Empty input falls back to the
// given default. The tag is shape-checked only; unknown languages fall
// through to the zh-Hant heuristics downstream.
func ValidateLang(lang, fallback string) (string, string) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = fallback
	}
	if !langRe.MatchString(lang) {
		return "", "lang must be a language tag such as \"en\" or \"zh-Hant\""
	}
	return lang, ""
}

// ClampDays parses the window length and clamps it to [7,365]. Unparsable
// input yields the default.
func ClampDays(raw string) int {
	if raw == "" {
		return DefaultWindowDays
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultWindowDays
	}
	if n < MinWindowDays {
		return MinWindowDays
	}
	if n > MaxWindowDays {
		return MaxWindowDays
	}
	return n
}

// FlagDefaultTrue interprets a query flag that defaults to on: only an
// explicit "0" disables it.
func FlagDefaultTrue(raw string) bool {
	return raw != "0"
}
