package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/resumeparse/internal/layout"
	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFDecoder handles PDF files. pdfcpu validates the file and enforces the
// page limit; ledongthuc/pdf yields one token per positioned text item.
type PDFDecoder struct {
	// MaxPages rejects longer documents; 0 disables the check.
	MaxPages int
}

// boldFontMarkers are font-name fragments that indicate a bold face.
var boldFontMarkers = []string{"bold", "black", "heavy", "semibold", "demi"}

func (d *PDFDecoder) Decode(r io.Reader, filename string) ([]layout.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	pages, err := pdfPageCount(data)
	if err != nil {
		return nil, err
	}
	if d.MaxPages > 0 && pages > d.MaxPages {
		return nil, fmt.Errorf("%w: %d pages, limit %d", ErrTooManyPages, pages, d.MaxPages)
	}

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var tokens []layout.Token
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageTokens, err := pdfPageTokens(page, i-1)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		tokens = append(tokens, pageTokens...)
	}

	return checkText(tokens)
}

// pdfPageCount validates the document with pdfcpu.
func pdfPageCount(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("validate pdf: %w", err)
	}
	return ctx.PageCount, nil
}

// pdfPageTokens converts one page's text items, flipping y so it grows
// downward. Malformed content streams make the library panic.
func pdfPageTokens(page pdflib.Page, index int) (tokens []layout.Token, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			tokens, err = nil, fmt.Errorf("read content: %v", rec)
		}
	}()

	height := pdfPageHeight(page)
	for _, t := range page.Content().Text {
		if t.S == "" {
			continue
		}
		weight := layout.WeightNormal
		if isBoldFont(t.Font) {
			weight = layout.WeightBold
		}
		tokens = append(tokens, layout.Token{
			Text:       t.S,
			X:          t.X,
			Y:          height - t.Y,
			Width:      t.W,
			FontSize:   t.FontSize,
			FontWeight: weight,
			Page:       index,
		})
	}
	return tokens, nil
}

// pdfPageHeight returns the top edge of the MediaBox, walking up to
// inherited page-tree attributes, and falls back to US Letter.
func pdfPageHeight(page pdflib.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			if top := box.Index(3).Float64(); top > 0 {
				return top
			}
		}
	}
	return 792
}

func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range boldFontMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
