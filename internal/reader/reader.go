// Package reader supplies raw page text from source documents. PDF decoding
// itself is delegated to github.com/ledongthuc/pdf; the rest of the system
// only ever sees the concatenated page text.
package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document is readable but yields no text.
var ErrNoText = errors.New("document contains no extractable text")

// PageReader supplies the raw text of each page of a document.
type PageReader interface {
	Pages(path string) ([]string, error)
}

// ForPath picks a reader by file extension: .pdf documents go through the
// PDF decoder, everything else is read as plain text.
func ForPath(path string) PageReader {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return PDFReader{}
	}
	return TextReader{}
}

// DocumentText reads a document and returns the concatenation of all
// non-empty page texts, joined with newlines. It returns ErrNoText when
// every page is empty.
func DocumentText(path string) (string, error) {
	pages, err := ForPath(path).Pages(path)
	if err != nil {
		return "", err
	}
	var nonEmpty []string
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return strings.Join(nonEmpty, "\n"), nil
}

// PDFReader extracts page text from PDF documents.
type PDFReader struct{}

// Pages returns the plain text of each page in order.
func (PDFReader) Pages(path string) (pages []string, err error) {
	// The decoder panics on some malformed files; a broken document must
	// degrade to a per-document error, not kill the batch.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("failed to decode PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// TextReader reads plain-text documents, splitting pages on form feeds.
// It exists for fixtures and for directives already converted to text.
type TextReader struct{}

// Pages returns the form-feed-separated pages of a text file.
func (TextReader) Pages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.Split(string(data), "\f"), nil
}
