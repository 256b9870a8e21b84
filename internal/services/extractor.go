package services

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"skilledwork/jobboard-api/internal/apperrors"
)

// TextExtractor converts an uploaded resume file into plain text.
type TextExtractor interface {
	// ExtractText returns the textual content of the file at path.
	// Unsupported extensions yield an empty string without an error;
	// a supported file that cannot be parsed yields an ExtractionError.
	ExtractText(path string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor.
func (e *textExtractor) ExtractText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: not a readable file: %s", apperrors.ErrInvalidInput, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	default:
		// Unsupported types are not an error; the resume simply scores
		// as empty text.
		return "", nil
	}
}

func extractPDF(path string) (text string, err error) {
	// The pdf package panics on some malformed files instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.NewExtractionError(path, fmt.Errorf("panic while parsing PDF: %v", r))
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", apperrors.NewExtractionError(path, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		for i, item := range content.Text {
			if i > 0 {
				textBuilder.WriteString(" ")
			}
			textBuilder.WriteString(item.S)
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", apperrors.NewExtractionError(path, err)
	}
	defer doc.Close()

	return docxBodyText(doc.Editable().GetContent()), nil
}

// docxBodyText strips WordprocessingML markup down to the raw text of the
// document body. Paragraph ends become newlines, everything else between
// angle brackets is dropped.
func docxBodyText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var textBuilder strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			textBuilder.WriteRune(r)
		}
	}

	return strings.TrimSpace(html.UnescapeString(textBuilder.String()))
}
