// Package render turns a report into a downloadable PNG card.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	columns = 64
	margin  = 16
	scale   = 2
)

var (
	background = color.RGBA{0xfa, 0xf7, 0xf2, 0xff}
	ink        = color.RGBA{0x33, 0x2b, 0x24, 0xff}
	accent     = color.RGBA{0x8e, 0x44, 0xad, 0xff}
)

// Renderer draws with the fixed 7x13 bitmap face. Its metrics are computed
// on first use.
type Renderer struct {
	once       sync.Once
	face       font.Face
	advance    int
	lineHeight int
	ascent     int
}

// Default is shared by the HTTP handler and the export command.
var Default = &Renderer{}

func (r *Renderer) prepare() {
	r.once.Do(func() {
		r.face = basicfont.Face7x13
		adv, _ := r.face.GlyphAdvance('M')
		r.advance = adv.Round()
		m := r.face.Metrics()
		r.ascent = m.Ascent.Round()
		r.lineHeight = m.Height.Round() + 3
	})
}

// Fold strips accents and drops anything the ASCII face cannot draw.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r > unicode.MaxASCII || (r < ' ' && r != '\n') {
			return -1
		}
		return r
	}, folded)
}

// Wrap splits line into chunks of at most cols characters on word
// boundaries, cutting words longer than cols.
func Wrap(line string, cols int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		out []string
		cur string
	)
	for _, w := range words {
		for len(w) > cols {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			out = append(out, w[:cols])
			w = w[cols:]
		}
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= cols:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// Render writes a PNG with title on top and the wrapped report below.
func (r *Renderer) Render(w io.Writer, title, report string) error {
	r.prepare()

	var body []string
	for _, line := range strings.Split(Fold(report), "\n") {
		body = append(body, Wrap(strings.TrimSpace(line), columns)...)
	}
	header := Wrap(Fold(title), columns)

	width := 2*margin + columns*r.advance
	height := 2*margin + (len(header)+1+len(body))*r.lineHeight
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	y := margin + r.ascent
	y = r.drawLines(canvas, header, accent, y)
	y += r.lineHeight
	r.drawLines(canvas, body, ink, y)

	scaled := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)

	if err := png.Encode(w, scaled); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG is Render into a byte slice.
func (r *Renderer) PNG(title, report string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, title, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawLines(dst draw.Image, lines []string, c color.Color, y int) int {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: r.face}
	for _, line := range lines {
		d.Dot = fixed.P(margin, y)
		d.DrawString(line)
		y += r.lineHeight
	}
	return y
}

// Filename is the download name for a name's image.
func Filename(name string) string {
	return "significado_" + name + ".png"
}
