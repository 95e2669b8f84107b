package transcript

import (
	"fmt"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/slidecast/internal/deck"
	"github.com/nguyentantai21042004/slidecast/internal/speech"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	pageSize  = 14
)

// Write saves the narration scripts of one deck as a styled docx next to
// the video: deck title, then per slide a page heading and the spoken text
// with control markers stripped.
func Write(title string, units []deck.Unit, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), time.Now().Format("2006-01-02 15:04"), false, fontSize)
	doc.AddParagraph("")

	for _, u := range units {
		heading := fmt.Sprintf("第%d页", u.Page)
		if u.Title != "" {
			heading += "　" + u.Title
		}
		addStyledRun(doc.AddParagraph(""), heading, true, pageSize)

		spoken := speech.Normalize(u.Text)
		if spoken == "" {
			spoken = "（本页无讲解）"
		}
		addStyledRun(doc.AddParagraph(""), spoken, false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
