package services

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractor turns an uploaded or local document into plain text.
// Nothing is written to disk.
type TextExtractor interface {
	ExtractFile(path string) (*DocumentContent, error)
	ExtractBytes(filename string, data []byte) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	FileType  string
}

const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeText = "text"
)

// ErrUnsupportedFileType is returned for extensions other than .pdf, .docx, .txt and .md.
var ErrUnsupportedFileType = errors.New("unsupported file type")

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (t *textExtractor) ExtractFile(path string) (*DocumentContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t.ExtractBytes(filepath.Base(path), data)
}

func (t *textExtractor) ExtractBytes(filename string, data []byte) (*DocumentContent, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(bytes.NewReader(data), int64(len(data)))
	case ".docx":
		return extractDOCX(bytes.NewReader(data), int64(len(data)))
	case ".txt", ".md", "":
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("text file is not valid UTF-8")
		}
		text := CleanText(string(data))
		if text == "" {
			return nil, fmt.Errorf("no text content found in file")
		}
		return &DocumentContent{Text: text, PageCount: 0, FileType: FileTypeText}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

func extractPDF(r io.ReaderAt, size int64) (*DocumentContent, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; the rest may still be usable.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &DocumentContent{
		Text:      text,
		PageCount: totalPage,
		FileType:  FileTypePDF,
	}, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(r io.ReaderAt, size int64) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// document.xml comes back raw; keep paragraph breaks and drop the markup.
	content := docxParagraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = docxTab.ReplaceAllString(content, " ")
	text := CleanText(html.UnescapeString(xmlTag.ReplaceAllString(content, "")))
	if text == "" {
		return nil, fmt.Errorf("no text content found in DOCX")
	}

	return &DocumentContent{Text: text, FileType: FileTypeDOCX}, nil
}

// CleanText trims every line and collapses runs of blank lines into a single
// paragraph break.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))

	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}
