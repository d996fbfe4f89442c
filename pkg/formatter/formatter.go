package formatter

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const DateLayout = "January 02, 2006, 03:04 PM"

var lagos = loadLagos()

func loadLagos() *time.Location {
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		// WAT has no DST.
		return time.FixedZone("WAT", 60*60)
	}
	return loc
}

// FormatDate renders t in West Africa Time, e.g. "March 05, 2025, 02:30 PM".
// Zero times render as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(lagos).Format(DateLayout)
}

// Truncate cuts s to max runes and appends "..." when something was cut.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "..."
}

// TruncateWords keeps the first n words of s.
// Example: TruncateWords("Flood hits the capital city", 3) -> "Flood hits the..."
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "..."
}

// StripHTML returns the text content of an HTML fragment with runs of
// whitespace collapsed. Script and style bodies are dropped.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawText(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawText(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// Excerpt is the plain text of an HTML body cut to max runes.
func Excerpt(fragment string, max int) string {
	return Truncate(StripHTML(fragment), max)
}

func isRawText(tag string) bool {
	return tag == "script" || tag == "style"
}
