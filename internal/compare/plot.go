package compare

import (
	"image/color"
	"math"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	pendulumColor = color.NRGBA{R: 31, G: 119, B: 180, A: 140}
	urandomColor  = color.NRGBA{R: 255, G: 127, B: 14, A: 140}
)

// renderPlot writes the comparison figure: overlaid density histograms of
// both raw samples next to a quantile-quantile plot of the normalized ones.
func renderPlot(pend, ref, pendNorm, refNorm []float64, path string) error {
	histPanel, err := histogramPanel(pend, ref)
	if err != nil {
		return err
	}
	qqPanel, err := quantilePanel(pendNorm, refNorm)
	if err != nil {
		return err
	}

	img := vgimg.New(12*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 2,
		PadX: vg.Points(15), PadY: vg.Points(15),
		PadLeft: vg.Points(5), PadRight: vg.Points(5),
		PadTop: vg.Points(5), PadBottom: vg.Points(5),
	}

	canvases := plot.Align([][]*plot.Plot{{histPanel, qqPanel}}, tiles, dc)
	histPanel.Draw(canvases[0][0])
	qqPanel.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}

func histogramPanel(pend, ref []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "pendulum (blue) vs urandom (orange)"
	p.X.Label.Text = "value"
	p.Y.Label.Text = "density"

	for _, sample := range []struct {
		data []float64
		fill color.Color
	}{
		{pend, pendulumColor},
		{ref, urandomColor},
	} {
		h, err := plotter.NewHist(plotter.Values(sample.data), 30)
		if err != nil {
			return nil, err
		}
		h.Normalize(1)
		h.FillColor = sample.fill
		h.LineStyle.Width = 0
		p.Add(h)
	}

	return p, nil
}

func quantilePanel(pendNorm, refNorm []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "QQ: pendulum vs urandom (normalized)"
	p.X.Label.Text = "pendulum quantiles"
	p.Y.Label.Text = "urandom quantiles"

	a := append([]float64(nil), pendNorm...)
	b := append([]float64(nil), refNorm...)
	sort.Float64s(a)
	sort.Float64s(b)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = a[i]
		pts[i].Y = b[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = pendulumColor
	p.Add(scatter)

	if n > 0 {
		lo := math.Min(a[0], b[0])
		hi := math.Max(a[n-1], b[n-1])
		ident, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
		if err != nil {
			return nil, err
		}
		ident.LineStyle.Color = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
		ident.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(ident)
	}

	return p, nil
}
