package certificate

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"text/template"
)

var svgTemplate = template.Must(template.New("certificate").Funcs(template.FuncMap{
	"xml":   escapeXML,
	"lineY": func(i int) int { return descriptionTop + i*descriptionLineHeight },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="100%" height="100%" fill="#fdfaf1"/>
  <rect x="20" y="20" width="{{.InnerWidth}}" height="{{.InnerHeight}}" fill="none" stroke="#b8860b" stroke-width="8"/>
  <rect x="36" y="36" width="{{.BorderWidth}}" height="{{.BorderHeight}}" fill="none" stroke="#d4af37" stroke-width="2"/>
  <g font-family="Georgia, 'Times New Roman', serif" text-anchor="middle" fill="#2b2b2b">
    <text x="400" y="115" font-size="40" font-weight="bold" fill="#8b6508">Certificate of Achievement</text>
    <text x="400" y="175" font-size="18" font-style="italic">This certifies that</text>
    <text x="400" y="235" font-size="36" font-weight="bold">{{xml .RecipientName}}</text>
    <text x="400" y="280" font-size="18" font-style="italic">has been recognized for</text>
    <text x="400" y="330" font-size="28" fill="#8b6508">{{xml .Achievement}}</text>
{{- range $i, $line := .Description}}
    <text x="400" y="{{lineY $i}}" font-size="16">{{xml $line}}</text>
{{- end}}
  </g>
  <g font-family="Helvetica, Arial, sans-serif" font-size="14" fill="#555555">
    <text x="90" y="520" text-anchor="start">Issued by {{xml .Issuer}}</text>
    <text x="710" y="520" text-anchor="end">{{xml .IssuedOn}}</text>
    <text x="400" y="552" text-anchor="middle" font-size="12">{{xml .Address}}</text>
    <text x="400" y="570" text-anchor="middle" font-size="10" fill="#888888">ID {{xml .ID}}</text>
  </g>
</svg>
`))

const (
	descriptionTop        = 380
	descriptionLineHeight = 24
)

type svgView struct {
	Width, Height             int
	InnerWidth, InnerHeight   int
	BorderWidth, BorderHeight int
	RecipientName             string
	Achievement               string
	Description               []string
	Issuer                    string
	IssuedOn                  string
	Address                   string
	ID                        string
}

// RenderSVG renders c as an SVG document. Every user-supplied string is
// XML-escaped.
func RenderSVG(c *Certificate) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("nil certificate")
	}

	view := svgView{
		Width:         Width,
		Height:        Height,
		InnerWidth:    Width - 40,
		InnerHeight:   Height - 40,
		BorderWidth:   Width - 72,
		BorderHeight:  Height - 72,
		RecipientName: truncate(c.RecipientName, maxFieldRunes),
		Achievement:   truncate(c.Achievement, maxFieldRunes),
		Description:   wrap(c.Description, descriptionRunesPerLine, maxDescriptionLines),
		Issuer:        truncate(c.Issuer, maxFieldRunes),
		IssuedOn:      c.IssuedAt.Format(dateLayout),
		Address:       c.RecipientAddress,
		ID:            c.ID.String(),
	}

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render certificate svg: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
