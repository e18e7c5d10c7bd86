package normalize

import (
	"path"
	"regexp"
	"strings"
)

var (
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
	trailingWS   = regexp.MustCompile(`[ \t]+\n`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugDashRuns = regexp.MustCompile(`-{2,}`)
)

// CleanText collapses space/tab runs and trims, keeping newlines so a
// multi-paragraph description stays multi-paragraph.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = trailingWS.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// NormalizeURL trims the URL and strips the fragment.
func NormalizeURL(urlStr string) string {
	urlStr = strings.TrimSpace(urlStr)
	if idx := strings.Index(urlStr, "#"); idx > -1 {
		urlStr = urlStr[:idx]
	}
	return urlStr
}

// Slug derives a filesystem-safe name from a card title: lowercased,
// spaces to dashes, anything else dropped.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileExt extracts the file extension from an image URL, ignoring any
// query string. Missing or implausibly long extensions fall back to ".jpg".
func FileExt(rawURL string) string {
	base := rawURL
	if idx := strings.Index(base, "?"); idx > -1 {
		base = base[:idx]
	}
	ext := strings.ToLower(path.Ext(base))
	if ext == "" || len(ext) > 6 {
		return ".jpg"
	}
	return ext
}
