package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerwinzhai/speakdaily/internal/inference"
	"github.com/mandolyte/mdtopdf"
)

// RenderMarkdown renders one day's study summary as a markdown document for
// export.
func RenderMarkdown(bucket DayBucket, s inference.StudySummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Study Summary — %s\n\n", bucket.Key)
	if s.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n\n", s.Topic)
	}
	fmt.Fprintf(&b, "%d vocabulary items, %d grammar points, %d expressions\n\n",
		s.Stats.VocabCount, s.Stats.GrammarCount, s.Stats.ExpressionsCount)

	if len(bucket.Entries) > 0 {
		b.WriteString("## Practice\n\n")
		for _, entry := range bucket.Entries {
			if entry.SourceText == "" && entry.TargetText == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s — %s\n", entry.SourceText, entry.TargetText)
		}
		b.WriteString("\n")
	}

	if len(s.Vocabulary) > 0 {
		b.WriteString("## Vocabulary\n\n")
		for _, item := range s.Vocabulary {
			fmt.Fprintf(&b, "- **%s**: %s\n  - %s\n", item.Word, item.Meaning, item.Example)
		}
		b.WriteString("\n")
	}

	if len(s.Grammar) > 0 {
		b.WriteString("## Grammar\n\n")
		for _, item := range s.Grammar {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n> %s\n\n", item.Title, item.Explanation, item.Example)
		}
	}

	if len(s.Quiz) > 0 {
		b.WriteString("## Quiz\n\n")
		for i, item := range s.Quiz {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Question)
			for j, option := range item.Options {
				fmt.Fprintf(&b, "   %c. %s\n", 'a'+j, option)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ConvertMarkdownToPDF converts an exported markdown file to PDF. The PDF is
// created next to the markdown file.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
