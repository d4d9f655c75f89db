package report

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gobandits/utils/floatutils"
)

// Dimensions of rendered PNG plots in pixels
const (
	plotWidth  = 800
	plotHeight = 500
	margin     = 60.0
)

// Plot describes a line plot of a single per-step series
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Series []float64

	// Reference is drawn as a dashed horizontal line if ShowReference
	// is true
	Reference     float64
	ShowReference bool
}

// PNG renders the Plot as a PNG image to w
func PNG(w io.Writer, p Plot) error {
	if len(p.Series) == 0 {
		return fmt.Errorf("png: cannot plot an empty series")
	}

	min, max := floatutils.Range(p.Series...)
	if p.ShowReference {
		min, max = floatutils.Range(min, max, p.Reference)
	}
	if max == min {
		min, max = min-0.5, max+0.5
	}

	dc := gg.NewContext(plotWidth, plotHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	left, right := margin, float64(plotWidth)-margin/2
	top, bottom := margin, float64(plotHeight)-margin

	x := func(i int) float64 {
		if len(p.Series) == 1 {
			return left
		}
		return left + float64(i)/float64(len(p.Series)-1)*(right-left)
	}
	y := func(v float64) float64 {
		return bottom - (v-min)/(max-min)*(bottom-top)
	}

	// Axes
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(left, bottom, right, bottom)
	dc.Stroke()

	// Labels and axis limits
	dc.DrawStringAnchored(p.Title, float64(plotWidth)/2, margin/2, 0.5, 0.5)
	dc.DrawStringAnchored(p.XLabel, (left+right)/2, bottom+margin/2, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", max), left-5, top, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", min), left-5, bottom, 1, 0.5)
	dc.DrawStringAnchored("1", left, bottom+12, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%d", len(p.Series)), right,
		bottom+12, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), margin/4, (top+bottom)/2)
	dc.DrawStringAnchored(p.YLabel, margin/4, (top+bottom)/2, 0.5, 0.5)
	dc.Pop()

	if p.ShowReference {
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.SetDash(6, 4)
		dc.DrawLine(left, y(p.Reference), right, y(p.Reference))
		dc.Stroke()
		dc.SetDash()
	}

	// Series
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(1.5)
	dc.MoveTo(x(0), y(p.Series[0]))
	for i := 1; i < len(p.Series); i++ {
		dc.LineTo(x(i), y(p.Series[i]))
	}
	dc.Stroke()

	return dc.EncodePNG(w)
}
