package services

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"skilledwork/jobboard-api/internal/apperrors"
)

func TestExtractTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("plain text resume"), 0644); err != nil {
		t.Fatal(err)
	}

	extractor := NewTextExtractor()
	text, err := extractor.ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error for unsupported extension: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for unsupported extension, got %q", text)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing file, got %v", err)
	}
}

func TestExtractTextDirectory(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText(t.TempDir())
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for directory, got %v", err)
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf at all"), 0644); err != nil {
		t.Fatal(err)
	}

	extractor := NewTextExtractor()
	_, err := extractor.ExtractText(path)

	var extractionErr *apperrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError for corrupt PDF, got %v", err)
	}
	if extractionErr.Unwrap() == nil {
		t.Fatal("extraction error must carry the underlying cause")
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	if err := os.WriteFile(path, []byte{0xde, 0xad, 0xbe, 0xef}, 0644); err != nil {
		t.Fatal(err)
	}

	extractor := NewTextExtractor()
	_, err := extractor.ExtractText(path)

	var extractionErr *apperrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError for corrupt DOCX, got %v", err)
	}
}

func TestExtractTextDocx(t *testing.T) {
	path := writeTestDocx(t, []string{"John Doe", "Software Engineer with experience in Go"})

	extractor := NewTextExtractor()
	text, err := extractor.ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "John Doe\nSoftware Engineer with experience in Go"
	if text != want {
		t.Fatalf("extracted text = %q, want %q", text, want)
	}
}

func TestExtractTextDeterministic(t *testing.T) {
	path := writeTestDocx(t, []string{"Jane Doe", "Backend Developer"})

	extractor := NewTextExtractor()
	first, err := extractor.ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := extractor.ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("extraction is not deterministic: %q vs %q", first, second)
	}
}

func TestDocxBodyText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "paragraphs become lines",
			content: "<w:body><w:p><w:r><w:t>one</w:t></w:r></w:p><w:p><w:r><w:t>two</w:t></w:r></w:p></w:body>",
			want:    "one\ntwo",
		},
		{
			name:    "entities unescaped",
			content: "<w:p><w:t>R&amp;D engineer</w:t></w:p>",
			want:    "R&D engineer",
		},
		{
			name:    "empty body",
			content: "<w:body></w:body>",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := docxBodyText(tt.content); got != tt.want {
				t.Errorf("docxBodyText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// writeTestDocx builds a minimal valid DOCX archive with one paragraph per
// entry of paragraphs.
func writeTestDocx(t *testing.T, paragraphs []string) string {
	t.Helper()

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		document += "<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>"
	}
	document += `</w:body></w:document>`

	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml":   document,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
