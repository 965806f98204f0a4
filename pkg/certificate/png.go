package certificate

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fogleman/gg"
)

// fontCandidates are tried in order when no font path is configured.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/Library/Fonts/Arial.ttf",
}

// resolveFont returns the first readable font, or "" for the built-in face.
func (r *Renderer) resolveFont() string {
	paths := fontCandidates
	if r != nil && r.fontPath != "" {
		paths = append([]string{r.fontPath}, fontCandidates...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// RenderPNG rasterises the certificate layout.
func (r *Renderer) RenderPNG(c *Certificate) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("nil certificate")
	}

	dc := gg.NewContext(Width, Height)
	fontPath := r.resolveFont()
	setFont := func(points float64) {
		if fontPath == "" {
			return
		}
		if err := dc.LoadFontFace(fontPath, points); err != nil {
			fontPath = ""
		}
	}

	dc.SetHexColor("#fdfaf1")
	dc.Clear()

	dc.SetHexColor("#b8860b")
	dc.SetLineWidth(8)
	dc.DrawRectangle(20, 20, Width-40, Height-40)
	dc.Stroke()

	dc.SetHexColor("#d4af37")
	dc.SetLineWidth(2)
	dc.DrawRectangle(36, 36, Width-72, Height-72)
	dc.Stroke()

	cx := float64(Width) / 2

	setFont(40)
	dc.SetHexColor("#8b6508")
	dc.DrawStringAnchored("Certificate of Achievement", cx, 105, 0.5, 0.5)

	setFont(18)
	dc.SetHexColor("#2b2b2b")
	dc.DrawStringAnchored("This certifies that", cx, 168, 0.5, 0.5)

	setFont(36)
	dc.DrawStringAnchored(truncate(c.RecipientName, maxFieldRunes), cx, 228, 0.5, 0.5)

	setFont(18)
	dc.DrawStringAnchored("has been recognized for", cx, 273, 0.5, 0.5)

	setFont(28)
	dc.SetHexColor("#8b6508")
	dc.DrawStringAnchored(truncate(c.Achievement, maxFieldRunes), cx, 322, 0.5, 0.5)

	setFont(16)
	dc.SetHexColor("#2b2b2b")
	lines := dc.WordWrap(c.Description, Width-180)
	if len(lines) > maxDescriptionLines {
		lines = lines[:maxDescriptionLines]
		lines[maxDescriptionLines-1] += " …"
	}
	for i, line := range lines {
		dc.DrawStringAnchored(line, cx, float64(descriptionTop-6+i*descriptionLineHeight), 0.5, 0.5)
	}

	setFont(14)
	dc.SetHexColor("#555555")
	dc.DrawStringAnchored("Issued by "+truncate(c.Issuer, maxFieldRunes), 90, 515, 0, 0.5)
	dc.DrawStringAnchored(c.IssuedAt.Format(dateLayout), Width-90, 515, 1, 0.5)

	setFont(12)
	dc.DrawStringAnchored(shortAddress(c.RecipientAddress), cx, 548, 0.5, 0.5)

	setFont(10)
	dc.SetHexColor("#888888")
	dc.DrawStringAnchored("ID "+c.ID.String(), cx, 566, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode certificate png: %w", err)
	}
	return buf.Bytes(), nil
}
