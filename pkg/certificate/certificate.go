// Package certificate renders achievement certificates as SVG or PNG images.
package certificate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	Width  = 800
	Height = 600

	FormatSVG = "svg"
	FormatPNG = "png"

	// maxFieldRunes bounds single-line fields so they fit the layout.
	maxFieldRunes = 48
	// maxDescriptionLines bounds the wrapped description block.
	maxDescriptionLines = 4
	// descriptionRunesPerLine is the wrap width used for the SVG layout.
	descriptionRunesPerLine = 64

	dateLayout = "January 2, 2006"
)

// Certificate is the content of one generated certificate.
type Certificate struct {
	ID               uuid.UUID
	RecipientName    string
	RecipientAddress string
	Achievement      string
	Description      string
	Issuer           string
	IssuedAt         time.Time
}

// New returns a certificate with a fresh random ID.
func New(recipientName, recipientAddress, achievement, description, issuer string, issuedAt time.Time) *Certificate {
	return &Certificate{
		ID:               uuid.New(),
		RecipientName:    strings.TrimSpace(recipientName),
		RecipientAddress: strings.TrimSpace(recipientAddress),
		Achievement:      strings.TrimSpace(achievement),
		Description:      strings.TrimSpace(description),
		Issuer:           strings.TrimSpace(issuer),
		IssuedAt:         issuedAt.UTC(),
	}
}

// FileName is the name the rendered image is uploaded under.
func (c *Certificate) FileName(ext string) string {
	return fmt.Sprintf("certificate-%s.%s", c.ID, ext)
}

// Image is a rendered certificate.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Renderer renders certificates. The zero value renders PNGs with the
// built-in bitmap face unless a system font is found.
type Renderer struct {
	fontPath string
}

// NewRenderer returns a renderer that prefers the TrueType font at fontPath
// for PNG output.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// Render renders c in the given format (svg or png).
func (r *Renderer) Render(c *Certificate, format string) (*Image, error) {
	if c == nil {
		return nil, fmt.Errorf("nil certificate")
	}

	switch strings.ToLower(format) {
	case FormatSVG, "":
		data, err := RenderSVG(c)
		if err != nil {
			return nil, err
		}
		return &Image{Data: data, ContentType: "image/svg+xml", Extension: FormatSVG}, nil
	case FormatPNG:
		data, err := r.RenderPNG(c)
		if err != nil {
			return nil, err
		}
		return &Image{Data: data, ContentType: "image/png", Extension: FormatPNG}, nil
	default:
		return nil, fmt.Errorf("unsupported certificate format %q", format)
	}
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

// wrap splits s into lines of at most width runes, breaking on spaces and
// hard-splitting words longer than a line.
func wrap(s string, width, maxLines int) []string {
	var lines []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}

	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			flush()
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	flush()

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = strings.TrimSpace(string(last)) + "…"
	}
	return lines
}

// shortAddress renders 0x1234…abcd.
func shortAddress(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
