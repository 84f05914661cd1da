package imgview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"math"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const upperHalf = "▀"

// Decode parses JPEG, PNG, GIF or WebP bytes.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Fit returns the largest width×height with the source aspect ratio that fits
// in maxW×maxH. Both results are at least 1 when the inputs are positive.
func Fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	return min(max(w, 1), maxW), min(max(h, 1), maxH)
}

// Render draws img into a cols×rows cell box. Each cell holds two vertical
// pixels: the upper half-block takes the top pixel as foreground and the
// bottom pixel as background. The picture is centred horizontally.
func Render(img image.Image, cols, rows int, profile termenv.Profile) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), cols, rows*2)
	if w == 0 || h == 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	pad := strings.Repeat(" ", (cols-w)/2)
	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		line.WriteString(pad)
		for x := 0; x < w; x++ {
			cell := profile.String(upperHalf).Foreground(profile.Color(hex(dst.RGBAAt(x, y))))
			if y+1 < h {
				cell = cell.Background(profile.Color(hex(dst.RGBAAt(x, y+1))))
			}
			line.WriteString(cell.String())
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
