// Package charts renders the dashboard's bar and area charts as inline SVG.
package charts

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	svg "github.com/ajstarks/svgo"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

const (
	barChartWidth  = 800
	barLabelWidth  = 160
	barValueWidth  = 70
	barRowHeight   = 56
	barHeight      = 40
	barChartMargin = 8

	areaChartWidth  = 800
	areaChartHeight = 320
	areaPadLeft     = 44
	areaPadRight    = 30
	areaPadTop      = 10
	areaPadBottom   = 32
	areaGridLines   = 4
	areaGradientID  = "colorHours"
)

// Bar is one horizontal bar; Href makes it a link.
type Bar struct {
	Label string
	Value float64
	Href  string
	Title string
}

// Point is one sample of the area chart.
type Point struct {
	Label string
	Value float64
}

// BarChart draws one row per bar, scaled to the largest value. Earlier bars
// get stronger shades of the primary color.
func BarChart(bars []Bar, palette models.Palette) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(renderBarChart(bars, palette.WithDefaults()))
	})
}

// AreaChart draws the points as a line with a gradient fill beneath it.
func AreaChart(points []Point, palette models.Palette) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(renderAreaChart(points, palette.WithDefaults()))
	})
}

func renderBarChart(bars []Bar, palette models.Palette) string {
	height := len(bars)*barRowHeight + 2*barChartMargin
	maxValue := 0.0
	for _, bar := range bars {
		maxValue = math.Max(maxValue, bar.Value)
	}
	plotWidth := barChartWidth - barLabelWidth - barValueWidth

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(barChartWidth, height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, barChartWidth, height),
		`class="chart chart--bar"`,
		`role="img"`,
		`preserveAspectRatio="xMinYMin meet"`,
	)

	for i, bar := range bars {
		y := barChartMargin + i*barRowHeight
		width := 0
		if maxValue > 0 {
			width = int(math.Round(float64(plotWidth) * bar.Value / maxValue))
		}
		fill := palette.Shade(math.Min(0.5, float64(i)*0.1))

		if bar.Href != "" {
			canvas.Link(html.EscapeString(bar.Href), html.EscapeString(bar.Title))
		}
		canvas.Gstyle("cursor:pointer")
		if bar.Title != "" {
			canvas.Title(bar.Title)
		}
		canvas.Text(barLabelWidth-12, y+barHeight/2+5, bar.Label, `text-anchor="end"`, `class="chart__label"`)
		canvas.Roundrect(barLabelWidth, y, width, barHeight, 4, 4, fmt.Sprintf(`fill="%s"`, fill), `class="chart__bar"`)
		canvas.Text(barLabelWidth+width+8, y+barHeight/2+5, formatValue(bar.Value), `class="chart__value"`)
		canvas.Gend()
		if bar.Href != "" {
			canvas.LinkEnd()
		}
	}

	canvas.End()
	return stripProlog(buf.String())
}

func renderAreaChart(points []Point, palette models.Palette) string {
	plotWidth := areaChartWidth - areaPadLeft - areaPadRight
	plotHeight := areaChartHeight - areaPadTop - areaPadBottom
	baseY := areaPadTop + plotHeight

	maxValue := 0.0
	for _, p := range points {
		maxValue = math.Max(maxValue, p.Value)
	}
	yMax := niceMax(maxValue)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(areaChartWidth, areaChartHeight,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, areaChartWidth, areaChartHeight),
		`class="chart chart--area"`,
		`role="img"`,
		`preserveAspectRatio="xMinYMin meet"`,
	)

	canvas.Def()
	canvas.LinearGradient(areaGradientID, 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 5, Color: palette.Primary, Opacity: 0.3},
		{Offset: 95, Color: palette.Primary, Opacity: 0},
	})
	canvas.DefEnd()

	for i := 0; i <= areaGridLines; i++ {
		value := yMax * float64(i) / areaGridLines
		y := baseY - int(math.Round(float64(plotHeight)*float64(i)/areaGridLines))
		canvas.Line(areaPadLeft, y, areaPadLeft+plotWidth, y, `stroke="#e5e7eb"`, `stroke-dasharray="3 3"`, `class="chart__grid"`)
		canvas.Text(areaPadLeft-8, y+4, formatValue(value), `text-anchor="end"`, `class="chart__axis"`)
	}

	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i] = areaPadLeft
		if len(points) > 1 {
			xs[i] = areaPadLeft + int(math.Round(float64(plotWidth)*float64(i)/float64(len(points)-1)))
		}
		ys[i] = baseY - int(math.Round(float64(plotHeight)*p.Value/yMax))
	}

	if len(points) > 0 {
		var line, area strings.Builder
		for i := range points {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&line, "%s%d %d ", cmd, xs[i], ys[i])
		}
		fmt.Fprintf(&area, "M%d %d ", xs[0], baseY)
		for i := range points {
			fmt.Fprintf(&area, "L%d %d ", xs[i], ys[i])
		}
		fmt.Fprintf(&area, "L%d %d Z", xs[len(xs)-1], baseY)

		canvas.Path(area.String(), fmt.Sprintf(`fill="url(#%s)"`, areaGradientID), `class="chart__area"`)
		canvas.Path(strings.TrimSpace(line.String()), `fill="none"`, fmt.Sprintf(`stroke="%s"`, palette.Primary), `stroke-width="3"`, `class="chart__line"`)
	}

	for i, p := range points {
		canvas.Gstyle("cursor:default")
		canvas.Title(fmt.Sprintf("%s: %s hours", p.Label, formatValue(p.Value)))
		canvas.Circle(xs[i], ys[i], 5, fmt.Sprintf(`fill="%s"`, palette.Primary), `class="chart__dot"`)
		canvas.Gend()
		canvas.Text(xs[i], baseY+22, p.Label, `text-anchor="middle"`, `class="chart__axis"`)
	}

	canvas.End()
	return stripProlog(buf.String())
}

// niceMax rounds v up to a multiple of the grid line count so axis labels
// stay whole numbers.
func niceMax(v float64) float64 {
	if v <= 0 {
		return areaGridLines
	}
	return math.Ceil(v/areaGridLines) * areaGridLines
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stripProlog drops the XML declaration and generator comment so the SVG
// can be inlined into HTML.
func stripProlog(doc string) string {
	if idx := strings.Index(doc, "<svg"); idx > 0 {
		return doc[idx:]
	}
	return doc
}
