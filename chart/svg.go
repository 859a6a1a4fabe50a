package chart

import (
	"fmt"
	"html"
	"math"
	"strings"
)

const (
	emptyColor   = "#dddddd"
	legendWidth  = 160
	legendMargin = 10
	legendSwatch = 12
)

// SVG renders the pie with a legend on its right.
func (p Pie) SVG(width, height int) string {
	labels, values, colors := p.Labels(), p.Values(), p.Colors()

	cx := float64(height) / 2
	cy := float64(height) / 2
	r := math.Max(cx-legendMargin, 1)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)

	total := 0.0
	for _, v := range values {
		total += v
	}

	switch {
	case total <= 0:
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r, emptyColor)
	default:
		angle := -math.Pi / 2
		for i, v := range values {
			if v <= 0 {
				continue
			}
			frac := v / total
			if frac >= 1 {
				fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r, colors[i])
				break
			}
			end := angle + frac*2*math.Pi
			largeArc := 0
			if frac > 0.5 {
				largeArc = 1
			}
			fmt.Fprintf(&b, `<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"/>`,
				cx, cy,
				cx+r*math.Cos(angle), cy+r*math.Sin(angle),
				r, r, largeArc,
				cx+r*math.Cos(end), cy+r*math.Sin(end),
				colors[i])
			angle = end
		}
	}

	lx := float64(height) + legendMargin
	if float64(width)-lx < legendWidth {
		lx = math.Max(float64(width)-legendWidth, 0)
	}
	for i, label := range labels {
		y := float64(legendMargin + i*(legendSwatch+legendMargin))
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%d" height="%d" fill="%s"/>`,
			lx, y, legendSwatch, legendSwatch, colors[i])
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" font-size="12">%s</text>`,
			lx+legendSwatch+4, y+legendSwatch-1, html.EscapeString(label))
	}

	b.WriteString(`</svg>`)
	return b.String()
}
