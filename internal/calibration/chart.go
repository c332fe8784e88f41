package calibration

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// algorithmNames labels the two series of each crossover chart.
var algorithmNames = map[string][2]string{
	CrossoverKaratsuba:      {"basecase", "karatsuba"},
	CrossoverDC:             {"schoolbook", "divide-and-conquer"},
	CrossoverBarrettBalance: {"divide-and-conquer", "barrett"},
	CrossoverBarrett:        {"divide-and-conquer", "barrett"},
	CrossoverInvNewton:      {"basecase", "newton"},
}

// RenderChart writes an HTML page with one line chart per crossover,
// plotting ns/op of both algorithms against the operand size in words.
func RenderChart(w io.Writer, res Result) error {
	page := components.NewPage()
	page.SetPageTitle("natcalc calibration")
	for _, name := range crossoverOrder {
		ms := res.Measurements[name]
		if len(ms) == 0 {
			continue
		}
		page.AddCharts(crossoverChart(name, ms, res.Profile))
	}
	return page.Render(w)
}

func crossoverChart(name string, ms []Measurement, p *CalibrationProfile) *charts.Line {
	sizes := make([]string, len(ms))
	below := make([]opts.LineData, len(ms))
	above := make([]opts.LineData, len(ms))
	for i, m := range ms {
		sizes[i] = strconv.Itoa(m.Words)
		below[i] = opts.LineData{Value: m.Baseline.Nanoseconds()}
		above[i] = opts.LineData{Value: m.Candidate.Nanoseconds()}
	}

	subtitle := ""
	if p != nil {
		subtitle = fmt.Sprintf("%s/%s, %d CPUs, %d-bit words", p.GOOS, p.GOARCH, p.NumCPU, p.WordSize)
	}
	labels := algorithmNames[name]
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name + " crossover", Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: name, Width: "900px", Height: "450px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "words"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/op", Type: "log"}),
	)
	line.SetXAxis(sizes).
		AddSeries(labels[0], below).
		AddSeries(labels[1], above).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

// SaveChart renders the chart of res to path, creating the directory if
// needed.
func SaveChart(res Result, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	if err := RenderChart(f, res); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}
