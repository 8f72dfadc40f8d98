package summarizer

import (
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName   = "Calibri"
	fontSize   = 11
	titleSize  = 18
	textColor  = "000000"
	mutedColor = "666666"
	bulletMark = "• "
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*\+]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	reQuote    = regexp.MustCompile(`^>\s?(.*)$`)
)

// markdownToDocx renders the subset of markdown Gemini produces for
// summaries: headings, bullets, numbered items, quotes and **bold** runs.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, titleSize, true, textColor)
	addRun(doc.AddParagraph(""), "Generated "+time.Now().Format("2006-01-02 15:04"), fontSize, false, mutedColor)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isRule(trimmed) {
			continue
		}

		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addRun(doc.AddParagraph(""), m[2], headingSize(len(m[1])), true, textColor)
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addRichText(doc.AddParagraph(""), bulletMark+m[1])
		case reNumbered.MatchString(trimmed):
			m := reNumbered.FindStringSubmatch(trimmed)
			addRichText(doc.AddParagraph(""), m[1]+". "+m[2])
		case reQuote.MatchString(trimmed):
			m := reQuote.FindStringSubmatch(trimmed)
			addRun(doc.AddParagraph(""), m[1], fontSize, false, mutedColor)
		default:
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	return doc.SaveTo(outputPath)
}

func isRule(s string) bool {
	return s == "---" || s == "***" || s == "___"
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 13
	default:
		return 12
	}
}

func addRun(p *docx.Paragraph, text string, size uint64, bold bool, color string) {
	run := p.AddText(stripInline(text)).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}

// addRichText splits text on **bold** markers into alternating runs.
func addRichText(p *docx.Paragraph, text string) {
	for _, seg := range splitBold(text) {
		addRun(p, seg.text, fontSize, seg.bold, textColor)
	}
}

type segment struct {
	text string
	bold bool
}

func splitBold(text string) []segment {
	var segs []segment
	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, segment{text: text[last:loc[0]]})
		}
		segs = append(segs, segment{text: text[loc[2]:loc[3]], bold: true})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, segment{text: text[last:]})
	}
	return segs
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
