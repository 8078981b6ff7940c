package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ivlev/scrollfx/internal/director"
)

var (
	colorBackground = color.RGBA{12, 12, 16, 255}
	colorHero       = color.RGBA{120, 52, 210, 255}
	colorAbout      = color.RGBA{24, 24, 34, 255}
	colorVideo      = color.RGBA{230, 118, 40, 255}
	colorSticky     = color.RGBA{16, 16, 22, 255}
	colorText       = color.RGBA{240, 240, 240, 255}
	colorSlide      = color.RGBA{58, 140, 200, 255}
	colorRadio      = color.RGBA{220, 220, 220, 255}
	colorNeedle     = color.RGBA{230, 60, 80, 255}
	colorTilt       = color.RGBA{200, 60, 110, 255}

	cardPalette = []color.RGBA{
		{255, 94, 98, 255},
		{255, 186, 73, 255},
		{94, 214, 150, 255},
		{82, 170, 255, 255},
		{180, 120, 255, 255},
		{255, 120, 200, 255},
	}
)

const (
	textFace        = 13 // basicfont line height
	textAscent      = 11
	perspectiveDist = 800.0
)

var face = basicfont.Face7x13

// HeaderScale is the pixel multiplier of the pinned header text for a viewport height
func HeaderScale(viewportHeight float64) float64 {
	return viewportHeight / 720 * 8
}

// TextWidth returns the width of s drawn at scale
func TextWidth(s string, scale float64) float64 {
	return float64(font.MeasureString(face, s).Ceil()) * scale
}

// Canvas rasterises frames of one page. It is read-only after construction,
// so a single Canvas can be shared by concurrent render workers.
type Canvas struct {
	Width, Height int

	page   director.Page
	sx, sy float64
	cards  []*image.RGBA
	badge  image.Image
}

// NewCanvas prepares card faces for the output size. artwork may be empty,
// then cards are drawn as solid colors; otherwise faces cycle through it.
func NewCanvas(page director.Page, width, height int, artwork []image.Image) *Canvas {
	c := &Canvas{
		Width:  width,
		Height: height,
		page:   page,
		sx:     float64(width) / page.Viewport.Width,
		sy:     float64(height) / page.Viewport.Height,
	}

	cw := int(math.Round(page.Sticky.Cards.Width * c.sx))
	ch := int(math.Round(page.Sticky.Cards.Height * c.sy))
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	for i := range page.Sticky.Cards.Tables {
		img := image.NewRGBA(image.Rect(0, 0, cw, ch))
		if len(artwork) > 0 {
			src := artwork[i%len(artwork)]
			xdraw.CatmullRom.Scale(img, img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		} else {
			fill := cardPalette[i%len(cardPalette)]
			xdraw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, xdraw.Src)
			inner := img.Bounds().Inset(cw / 12)
			xdraw.Draw(img, inner, image.NewUniform(shade(fill, 0.8)), image.Point{}, xdraw.Src)
		}
		c.cards = append(c.cards, img)
	}

	return c
}

// SetBadge renders content as a QR code placed in the bottom-right corner of every frame
func (c *Canvas) SetBadge(content string) error {
	if content == "" {
		c.badge = nil
		return nil
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return err
	}
	size := c.Height / 7
	if c.Width < c.Height {
		size = c.Width / 7
	}
	c.badge = q.Image(size)
	return nil
}

// Draw paints f into dst. dst must be Width x Height.
func (c *Canvas) Draw(dst *image.RGBA, f *Frame) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(colorBackground), image.Point{}, xdraw.Src)

	c.drawHero(dst, f)
	c.drawAbout(dst, f)
	c.drawSlides(dst, f)
	c.drawRadio(dst, f)
	c.drawTilt(dst, f)
	// The pinned section covers whatever scrolls under it.
	c.drawSticky(dst, f)

	if c.badge != nil {
		b := c.badge.Bounds()
		margin := c.Height / 40
		at := image.Pt(c.Width-b.Dx()-margin, c.Height-b.Dy()-margin)
		xdraw.Draw(dst, b.Add(at), c.badge, b.Min, xdraw.Src)
	}
}

func (c *Canvas) drawHero(dst *image.RGBA, f *Frame) {
	p := c.page
	top := p.Hero.Box.Top - f.ScrollY
	bottom := top + p.Hero.Box.Height
	if bottom < 0 || top > p.Viewport.Height {
		return
	}

	vw := p.Viewport.Width
	c.fillPolygon(dst, [][2]float64{
		{0, top},
		{vw, top},
		{f.Hero.ClipCorner / 100 * vw, bottom},
		{0, bottom},
	}, colorHero)

	scale := HeaderScale(p.Viewport.Height) * 1.5
	alpha := f.Hero.Opacity
	c.drawText(dst, p.Hero.Title, vw*0.08+f.Hero.TitleX, top+p.Hero.Box.Height*0.3, scale, withAlpha(colorText, alpha))
	c.drawText(dst, p.Hero.Subtitle, vw*0.45+f.Hero.GamingX, top+p.Hero.Box.Height*0.55, scale, withAlpha(colorText, alpha))
}

func (c *Canvas) drawAbout(dst *image.RGBA, f *Frame) {
	p := c.page
	top := p.About.Box.Top - f.ScrollY
	if top+p.About.Box.Height < 0 || top > p.Viewport.Height {
		return
	}
	vw := p.Viewport.Width
	c.fillRect(dst, 0, top, vw, p.About.Box.Height, colorAbout)

	video := p.About.Video
	w, h := vw*0.6*f.About.VideoScale, video.Height*f.About.VideoScale
	cx, cy := vw/2, video.Top-f.ScrollY+video.Height/2
	c.fillRect(dst, cx-w/2, cy-h/2, w, h, colorVideo)

	textY := video.Top - f.ScrollY + video.Height + p.Viewport.Height*0.1 + f.About.TextY
	scale := HeaderScale(p.Viewport.Height) / 2
	textX := (vw - TextWidth(p.About.Text, scale)) / 2
	c.drawText(dst, p.About.Text, textX, textY, scale, withAlpha(colorText, f.About.TextOpacity))
}

// stickyTop returns the on-screen top of the pinned section
func (c *Canvas) stickyTop(scrollY float64) float64 {
	s := c.page.Sticky
	pinEnd := s.Box.Top + s.PinLength(c.page.Viewport.Height)
	switch {
	case scrollY < s.Box.Top:
		return s.Box.Top - scrollY
	case scrollY <= pinEnd:
		return 0
	default:
		return pinEnd - scrollY
	}
}

func (c *Canvas) drawSticky(dst *image.RGBA, f *Frame) {
	p := c.page
	top := c.stickyTop(f.ScrollY)
	if top+p.Sticky.Box.Height < 0 || top > p.Viewport.Height {
		return
	}
	vw := p.Viewport.Width
	c.fillRect(dst, 0, top, vw, p.Sticky.Box.Height, colorSticky)

	scale := HeaderScale(p.Viewport.Height)
	c.drawText(dst, p.Sticky.Header, f.HeaderX, top+p.Sticky.Box.Height*0.12, scale, colorText)

	cards := p.Sticky.Cards
	for i, t := range f.Cards {
		if t.Opacity <= 0 || i >= len(c.cards) {
			continue
		}
		left := vw*0.8 + t.X/100*cards.Width
		cardTop := top + (p.Sticky.Box.Height-cards.Height)/2 + t.Y/100*cards.Height
		c.drawRotated(dst, c.cards[i], left+cards.Width/2, cardTop+cards.Height/2, t.Rotation)
	}
}

func (c *Canvas) drawSlides(dst *image.RGBA, f *Frame) {
	p := c.page
	vw := p.Viewport.Width
	for i, box := range p.Slides.Boxes {
		top := box.Top - f.ScrollY
		if top+box.Height < 0 || top > p.Viewport.Height {
			continue
		}
		col := withAlpha(colorSlide, 0.15)
		offset := box.Height * 0.1
		if i < len(f.Slides) && f.Slides[i] {
			col, offset = withAlpha(colorSlide, 1), 0
		}
		c.fillRect(dst, vw*0.1, top+box.Height*0.1+offset, vw*0.8, box.Height*0.8, col)
	}
}

func (c *Canvas) drawRadio(dst *image.RGBA, f *Frame) {
	p := c.page
	box := p.Radio.Box
	top := box.Top - f.ScrollY
	if top+box.Height < 0 || top > p.Viewport.Height {
		return
	}
	cx, cy := p.Viewport.Width/2, top+box.Height/2
	r := box.Height * 0.35
	c.fillPolygon(dst, rotatedRect(cx, cy, r*2, r*2, f.RadioRotation), colorRadio)
	c.fillPolygon(dst, rotatedRect(cx, cy, r*1.6, r*0.2, f.RadioRotation), colorNeedle)
}

func (c *Canvas) drawTilt(dst *image.RGBA, f *Frame) {
	p := c.page
	box := p.Tilt.Box
	top := box.Top - f.ScrollY
	if top+box.Height < 0 || top > p.Viewport.Height {
		return
	}
	w, h := p.Tilt.Width, box.Height*0.8
	cx, cy := p.Viewport.Width/2, top+box.Height/2

	rx := f.Tilt.RotateX * math.Pi / 180
	ry := f.Tilt.RotateY * math.Pi / 180
	corners := [][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	pts := make([][2]float64, len(corners))
	for i, pt := range corners {
		// rotateX first, then rotateY, then a simple perspective divide
		y1 := pt[1] * math.Cos(rx)
		z1 := pt[1] * math.Sin(rx)
		x2 := pt[0]*math.Cos(ry) + z1*math.Sin(ry)
		z2 := -pt[0]*math.Sin(ry) + z1*math.Cos(ry)
		s := perspectiveDist / (perspectiveDist - z2)
		pts[i] = [2]float64{cx + x2*s, cy + y1*s}
	}
	c.fillPolygon(dst, pts, colorTilt)
}

// drawRotated draws src centred on (cx, cy) in viewport units, rotated clockwise by deg
func (c *Canvas) drawRotated(dst *image.RGBA, src *image.RGBA, cx, cy, deg float64) {
	w, h := float64(src.Bounds().Dx()), float64(src.Bounds().Dy())
	px, py := cx*c.sx, cy*c.sy
	sin, cos := math.Sincos(deg * math.Pi / 180)
	m := f64.Aff3{
		cos, -sin, px - cos*w/2 + sin*h/2,
		sin, cos, py - sin*w/2 - cos*h/2,
	}
	xdraw.BiLinear.Transform(dst, m, src, src.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) fillRect(dst *image.RGBA, x, y, w, h float64, col color.Color) {
	r := image.Rect(
		int(math.Round(x*c.sx)), int(math.Round(y*c.sy)),
		int(math.Round((x+w)*c.sx)), int(math.Round((y+h)*c.sy)),
	)
	xdraw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(col), image.Point{}, xdraw.Over)
}

func (c *Canvas) fillPolygon(dst *image.RGBA, pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(float32(pts[0][0]*c.sx), float32(pts[0][1]*c.sy))
	for _, p := range pts[1:] {
		r.LineTo(float32(p[0]*c.sx), float32(p[1]*c.sy))
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// drawText renders s with the bitmap face and scales it up; (x, y) is the top-left in viewport units
func (c *Canvas) drawText(dst *image.RGBA, s string, x, y, scale float64, col color.Color) {
	w := font.MeasureString(face, s).Ceil()
	if w == 0 || scale <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, textFace))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, textAscent),
	}
	d.DrawString(s)

	x0, y0 := x*c.sx, y*c.sy
	dr := image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x0+float64(w)*scale*c.sx)), int(math.Round(y0+textFace*scale*c.sy)),
	)
	if !dr.Overlaps(dst.Bounds()) {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dr, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func rotatedRect(cx, cy, w, h, deg float64) [][2]float64 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	corners := [][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	out := make([][2]float64, len(corners))
	for i, p := range corners {
		out[i] = [2]float64{cx + p[0]*cos - p[1]*sin, cy + p[0]*sin + p[1]*cos}
	}
	return out
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
