// Package reader turns résumé documents into plain text.
package reader

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"resumatch/internal/errors"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"
)

// Format is a document format tag.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
)

// SupportedFormats lists the accepted format tags.
var SupportedFormats = []Format{FormatPDF, FormatDOCX, FormatDOC, FormatTXT}

// DocumentReader extracts text from a document on disk.
type DocumentReader interface {
	ReadText(ctx context.Context, path string, format Format) (string, error)
}

// ParseFormat validates a format tag. A leading dot is accepted.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, supported := range SupportedFormats {
		if f == supported {
			return f, nil
		}
	}
	return "", errors.NewUnsupportedFormatError(string(f))
}

// DetectFormat maps a file name's extension to a format.
func DetectFormat(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// FileReader reads pdf, docx, doc and txt files from the local filesystem.
type FileReader struct{}

// NewFileReader returns a FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadText reads the file at path and returns its text. Unknown formats fail
// with an UnsupportedFormat error; unreadable files and documents that yield
// no text fail with an Extraction error carrying the cause.
func (r *FileReader) ReadText(ctx context.Context, path string, format Format) (string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", errors.NewExtractionError("text extraction cancelled", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewExtractionError(fmt.Sprintf("cannot read %s", filepath.Base(path)), err).
			WithContext("format", string(format))
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX, FormatDOC:
		text, err = extractDOCX(data)
	case FormatTXT:
		text = decodeText(data)
	}
	if err != nil {
		return "", errors.NewExtractionError(fmt.Sprintf("failed to extract text from %s", filepath.Base(path)), err).
			WithContext("format", string(format))
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.NewExtractionError(fmt.Sprintf("no text found in %s", filepath.Base(path)), nil).
			WithContext("format", string(format))
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	var firstErr error
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", i, err)
			}
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 && firstErr != nil {
		return "", firstErr
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	body := doc.Editable().GetContent()
	body = paragraphEnd.ReplaceAllString(body, "\n")
	body = xmlTag.ReplaceAllString(body, " ")
	return html.UnescapeString(body), nil
}

// decodeText treats data as UTF-8 and falls back to Latin-1 when it is not
// valid UTF-8.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
