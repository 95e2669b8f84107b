package speech

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	got := splitText("短文本。", googleChunkLimit)
	if len(got) != 1 || got[0] != "短文本。" {
		t.Errorf("splitText() = %v, want single unchanged chunk", got)
	}
}

func TestSplitTextSentenceBoundaries(t *testing.T) {
	// Three sentences of 30 runes each; with a limit of 40, no chunk may
	// break inside a sentence.
	sentence := strings.Repeat("字", 29) + "。"
	text := sentence + sentence + sentence

	chunks := splitText(text, 40)
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	for i, c := range chunks {
		if c != sentence {
			t.Errorf("chunk %d = %q, want a whole sentence", i, c)
		}
	}
}

func TestSplitTextPacksSentences(t *testing.T) {
	// Two 10-rune sentences fit one 25-rune chunk together.
	sentence := strings.Repeat("字", 9) + "。"
	text := strings.Repeat(sentence, 4)

	chunks := splitText(text, 25)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if n := len([]rune(c)); n > 25 {
			t.Errorf("chunk %d has %d runes, over limit", i, n)
		}
	}
}

func TestSplitTextRespectsLimit(t *testing.T) {
	// One pathological sentence far over the ceiling: falls back to clause
	// and then hard splits, but never exceeds the limit.
	text := strings.Repeat("字", 50) + "，" + strings.Repeat("字", 120)

	for _, c := range splitText(text, 40) {
		if n := len([]rune(c)); n > 40 {
			t.Errorf("chunk %q has %d runes, over limit 40", c, n)
		}
	}
}

func TestSplitTextNothingLost(t *testing.T) {
	text := "第一句话比较长一些。第二句。第三句话，有逗号，而且也不短。"
	joined := strings.Join(splitText(text, 10), "")
	if strings.ReplaceAll(joined, " ", "") != text {
		t.Errorf("content lost in split: %q vs %q", joined, text)
	}
}
