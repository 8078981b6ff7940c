package source

import (
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source supplies the artwork printed on the moving cards
type Source interface {
	PageCount() int
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a PDF or an image source by path
func Open(path string) (Source, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return NewImageSource(path)
}

// LoadArtwork renders up to n card faces cropped to their content. Fewer pages
// than cards is fine: the canvas cycles through what it gets.
func LoadArtwork(src Source, n, dpi int) ([]image.Image, error) {
	count := src.PageCount()
	if count == 0 {
		return nil, fmt.Errorf("источник не содержит страниц/изображений")
	}
	if n < count {
		count = n
	}

	cropper := NewCropper()
	faces := make([]image.Image, 0, count)
	for i := 0; i < count; i++ {
		img, err := src.RenderPage(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("render card %d: %w", i, err)
		}
		faces = append(faces, cropper.Crop(img))
	}
	return faces, nil
}

type FitzPDFSource struct {
	doc *fitz.Document
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc}, nil
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

// RenderPage uses the shared document; artwork is loaded once, before rendering starts.
func (f *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	return f.doc.ImageDPI(index, float64(dpi))
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
