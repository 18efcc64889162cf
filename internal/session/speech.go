package session

import (
	"regexp"
	"strings"
)

var (
	reNewlines  = regexp.MustCompile(`\n+`)
	speechStrip = strings.NewReplacer(
		"*", "",
		"#", "",
		"- ", "",
		"<b>", "",
		"</b>", "",
		"<br>", ". ",
	)
)

// CleanForSpeech strips markdown and HTML so a reply reads naturally when
// spoken. Raw JSON is never read aloud.
func CleanForSpeech(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.Contains(trimmed, "```json") || strings.HasPrefix(trimmed, "{") {
		return ReplyActionRunning
	}
	out := speechStrip.Replace(trimmed)
	return reNewlines.ReplaceAllString(out, ". ")
}
