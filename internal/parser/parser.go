// Package parser decodes uploaded documents into positioned text tokens.
package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/resumeparse/internal/layout"
)

var (
	// ErrUnsupportedFormat is returned for file extensions without a decoder.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoText is returned when a document decodes but carries no visible text.
	ErrNoText = errors.New("document contains no text")

	// ErrTooManyPages is returned when a PDF exceeds the configured page limit.
	ErrTooManyPages = errors.New("document has too many pages")
)

// Decoder converts raw document bytes into tokens in reading order.
type Decoder interface {
	Decode(r io.Reader, filename string) ([]layout.Token, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// Options tune decoder limits.
type Options struct {
	// MaxPDFPages rejects longer PDFs; 0 disables the check.
	MaxPDFPages int
}

// ForFile returns the decoder for a filename with default options.
func ForFile(filename string) (Decoder, error) {
	return Options{}.ForFile(filename)
}

// ForFile returns the decoder for a filename.
func (o Options) ForFile(filename string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextDecoder{}, nil
	case ".md", ".markdown":
		return &MarkdownDecoder{}, nil
	case ".html", ".htm":
		return &HTMLDecoder{}, nil
	case ".pdf":
		return &PDFDecoder{MaxPages: o.MaxPDFPages}, nil
	case ".docx":
		return &DOCXDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// checkText returns ErrNoText when no token has visible text.
func checkText(tokens []layout.Token) ([]layout.Token, error) {
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) != "" {
			return tokens, nil
		}
	}
	return nil, ErrNoText
}
