/*package render draws approximated curves alongside the samples they were
built from.
*/
package render

import (
	"fmt"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/phil-mansfield/gridapprox/math/interpolate"
)

// Curve is an evaluated approximation along with its input samples.
type Curve struct {
	Title   string
	Samples []interpolate.Sample
	Xs, Ys  []float64
}

func (c *Curve) check() error {
	if len(c.Xs) != len(c.Ys) {
		return fmt.Errorf(
			"render: curve has %d x values but %d y values", len(c.Xs), len(c.Ys),
		)
	}
	return nil
}

// SaveImage renders c to fname. The image format is taken from the file
// extension (png, svg, pdf, ...).
func SaveImage(fname string, c *Curve) error {
	if err := c.check(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	curveXYs := make(plotter.XYs, len(c.Xs))
	for i := range c.Xs {
		curveXYs[i].X, curveXYs[i].Y = c.Xs[i], c.Ys[i]
	}
	sampleXYs := make(plotter.XYs, len(c.Samples))
	for i, s := range c.Samples {
		sampleXYs[i].X, sampleXYs[i].Y = s.X, s.Y
	}

	line, err := plotter.NewLine(curveXYs)
	if err != nil {
		return err
	}
	points, err := plotter.NewScatter(sampleXYs)
	if err != nil {
		return err
	}

	p.Add(plotter.NewGrid(), line, points)
	p.Legend.Add("approximation", line)
	p.Legend.Add("samples", points)

	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}

// Pyplot renders c to fname with matplotlib. The plot is drawn by a python
// process, so python and matplotlib must be installed. An error is returned if
// python does not produce fname.
func Pyplot(fname string, c *Curve) error {
	if err := c.check(); err != nil {
		return err
	}

	sxs := make([]float64, len(c.Samples))
	sys := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		sxs[i], sys[i] = s.X, s.Y
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(c.Xs, c.Ys, "r", plt.LW(2))
	plt.Plot(sxs, sys, "ok")
	plt.Title(c.Title)
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.SaveFig(fname)

	return execute(fname)
}

// execute runs the pending pyplot script and checks that it wrote fname.
// pyplot ignores python's exit status and prints its output to os.Stdout, so
// stdout is captured for the duration of the run to keep it out of curve
// tables written there.
func execute(fname string) error {
	if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("render: could not clear '%s': %w", fname, err)
	}

	out, err := os.CreateTemp("", "gridapprox.pyplot.out")
	if err != nil {
		return err
	}
	defer os.Remove(out.Name())
	defer out.Close()

	stdout := os.Stdout
	os.Stdout = out
	func() {
		defer func() { os.Stdout = stdout }()
		plt.Execute()
	}()

	msg, err := os.ReadFile(out.Name())
	if err != nil {
		return err
	}
	text := strings.TrimSpace(string(msg))

	if _, err := os.Stat(fname); err != nil {
		if text == "" {
			text = "no output (is python on the PATH?)"
		}
		return fmt.Errorf("render: python did not write '%s': %s", fname, text)
	}
	if text != "" {
		logrus.Debugf("render: python output: %s", text)
	}
	return nil
}
