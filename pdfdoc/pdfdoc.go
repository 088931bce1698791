// Package pdfdoc reads timecard PDFs and exposes their pages as
// positioned word tokens plus a line-structured text blob. It is the
// bridge between the PDF library's per-character output and the
// word-level geometry the table reconstruction works on.
package pdfdoc

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/ymizrahi/timecard/model"
)

// Document is an open timecard PDF.
type Document struct {
	file   *os.File
	reader *pdf.Reader
	path   string
}

// Open opens the PDF at path.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{file: f, reader: r, path: path}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Page extracts page i (1-based) as positioned word tokens and a
// line-structured text blob. Both carry the raw visual-order text; the
// caller is responsible for script normalization.
func (d *Document) Page(i int) ([]model.WordToken, string, error) {
	p := d.reader.Page(i)
	if p.V.IsNull() {
		return nil, "", fmt.Errorf("%s: page %d: missing page object", d.path, i)
	}
	chars := p.Content().Text

	height, ok := mediaBoxHeight(p)
	if !ok {
		height = maxY(chars)
	}

	words := assembleWords(chars, height)
	return words, linesText(words), nil
}

// mediaBoxHeight resolves the page height from the MediaBox, walking up
// the page tree when the box is inherited.
func mediaBoxHeight(p pdf.Page) (float64, bool) {
	v := p.V
	for range 16 {
		if v.IsNull() {
			break
		}
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64(), true
		}
		v = v.Key("Parent")
	}
	return 0, false
}

func maxY(chars []pdf.Text) float64 {
	var m float64
	for _, c := range chars {
		if c.Y > m {
			m = c.Y
		}
	}
	return m
}
