package source

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Cropper trims the empty margins of a page so the card shows its content.
// Content is wherever the Sobel gradient of a downscaled gray copy is strong.
type Cropper struct {
	EdgeThreshold float64 // gradient magnitude counted as content
	MinCoverage   float64 // content smaller than this share of the page is ignored
	Margin        float64 // padding kept around the content, share of the page side
	probeSize     int
}

// NewCropper creates a cropper with settings that suit printed pages
func NewCropper() *Cropper {
	return &Cropper{
		EdgeThreshold: 30,
		MinCoverage:   0.05,
		Margin:        0.03,
		probeSize:     256,
	}
}

// ContentBounds returns the part of img worth showing, or img.Bounds() when
// nothing stands out
func (c *Cropper) ContentBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return b
	}

	// Analyse a small copy; page renders at print DPI are large
	scale := 1.0
	if long := math.Max(float64(b.Dx()), float64(b.Dy())); long > float64(c.probeSize) {
		scale = float64(c.probeSize) / long
	}
	pw := int(math.Max(3, math.Round(float64(b.Dx())*scale)))
	ph := int(math.Max(3, math.Round(float64(b.Dy())*scale)))
	probe := image.NewGray(image.Rect(0, 0, pw, ph))
	xdraw.ApproxBiLinear.Scale(probe, probe.Bounds(), img, b, xdraw.Src, nil)

	area, ok := c.edgeBox(probe)
	if !ok {
		return b
	}
	if float64(area.Dx()*area.Dy()) < c.MinCoverage*float64(pw*ph) {
		return b
	}

	mx := int(math.Round(c.Margin * float64(pw)))
	my := int(math.Round(c.Margin * float64(ph)))
	area = image.Rect(area.Min.X-mx, area.Min.Y-my, area.Max.X+mx, area.Max.Y+my).Intersect(probe.Bounds())

	// Back to source coordinates
	sx := float64(b.Dx()) / float64(pw)
	sy := float64(b.Dy()) / float64(ph)
	r := image.Rect(
		b.Min.X+int(math.Floor(float64(area.Min.X)*sx)),
		b.Min.Y+int(math.Floor(float64(area.Min.Y)*sy)),
		b.Min.X+int(math.Ceil(float64(area.Max.X)*sx)),
		b.Min.Y+int(math.Ceil(float64(area.Max.Y)*sy)),
	)
	return r.Intersect(b)
}

// Crop returns the content of img as a sub-image when the image type allows it
func (c *Cropper) Crop(img image.Image) image.Image {
	r := c.ContentBounds(img)
	if r == img.Bounds() {
		return img
	}
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	return img
}

// edgeBox is the bounding box of every pixel whose Sobel magnitude exceeds the threshold
func (c *Cropper) edgeBox(g *image.Gray) (image.Rectangle, bool) {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	at := func(x, y int) float64 { return float64(g.Pix[y*g.Stride+x]) }

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			if math.Hypot(gx, gy) <= c.EdgeThreshold {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
