package script

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/slidecast/internal/deck"
)

// Narration text is assembled by template substitution only; no generative
// model is involved anywhere in this package.

var (
	reChapter   = regexp.MustCompile(`第\d+章`)
	reDigits    = regexp.MustCompile(`^\d+$`)
	reSectionNo = regexp.MustCompile(`(?i)^(PART|SECTION|CHAPTER)\s*\d*\.?\d*$`)
	reSpaces    = regexp.MustCompile(`\s+`)
	rePauseDup  = regexp.MustCompile(`\{pause\}\s*\{pause\}`)
	reSentEnd   = regexp.MustCompile(`([。！？])`)
	reComma     = regexp.MustCompile(`([，])`)
)

// Generate turns slide text units into narration script units. The page and
// title are preserved; Text becomes the spoken script with {pause} markers
// inserted after sentence and clause boundaries. Invalid slides (page-number
// titles, table-of-contents pages) are skipped.
func Generate(units []deck.Unit) []deck.Unit {
	var scripts []deck.Unit
	opened := false

	for i, u := range units {
		title := cleanText(u.Title)
		content := contentLines(u.Text)

		if invalidSlide(title, i) {
			continue
		}

		var parts []string

		if !opened && (title != "" || len(content) > 0) {
			if title != "" {
				parts = append(parts, "今天我们来学习："+title+"。")
			} else {
				parts = append(parts, "今天我们来学习这部分内容。")
			}
			opened = true
		} else if title != "" && !reDigits.MatchString(title) && len([]rune(title)) > 1 {
			parts = append(parts, "我们来看："+title+"。")
		}

		parts = append(parts, content...)

		text := addPauses(strings.Join(parts, " "))
		if text == "" {
			continue
		}

		scripts = append(scripts, deck.Unit{Page: u.Page, Title: title, Text: text})
	}

	return scripts
}

func contentLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = cleanText(line)
		if line != "" && len([]rune(line)) > 1 {
			out = append(out, line)
		}
	}
	return out
}

// cleanText strips structural noise that reads badly aloud: chapter
// numbering, bare page numbers, section headings.
func cleanText(s string) string {
	s = reChapter.ReplaceAllString(s, "")
	s = reSectionNo.ReplaceAllString(s, "")
	if reDigits.MatchString(strings.TrimSpace(s)) {
		return ""
	}
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// invalidSlide reports slides that should not be narrated: pure page-number
// titles, and table-of-contents pages near the front of the deck.
func invalidSlide(title string, index int) bool {
	if reDigits.MatchString(title) && title != "" {
		return true
	}
	if index < 2 {
		lower := strings.ToLower(title)
		for _, kw := range []string{"目录", "contents", "chapter", "章"} {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// addPauses inserts {pause} markers after sentence-terminal punctuation and
// commas. The markers are directives for audio post-processing; the speech
// resolver strips them before synthesis.
func addPauses(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	result := reSentEnd.ReplaceAllString(text, "$1{pause}")
	result = reComma.ReplaceAllString(result, "$1{pause}")
	result = rePauseDup.ReplaceAllString(result, "{pause}")
	return strings.TrimSpace(reSpaces.ReplaceAllString(result, " "))
}
