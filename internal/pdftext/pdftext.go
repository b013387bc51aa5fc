// Package pdftext extracts plain text from PDF resumes.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FromFile extracts the text of every page in the PDF at path, joined with
// blank lines between pages.
func FromFile(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %q: %w", path, err)
	}
	defer doc.Close()

	return extract(doc)
}

// FromBytes extracts text from an in-memory PDF.
func FromBytes(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	return extract(doc)
}

func extract(doc *fitz.Document) (string, error) {
	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extract text from page %d: %w", i, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("pdf contains no extractable text")
	}

	return strings.Join(pages, "\n\n"), nil
}
