package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/meltworks/slagview-cli/internal/dataset"
)

// Chart renders a viscosity-vs-temperature line chart to w, one series per
// composition group, as a standalone HTML page. It only consumes projected
// series; grouping and ordering decisions stay in the dataset package.
func Chart(w io.Writer, ds *dataset.Dataset, g *dataset.Grouping) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Melt Viscosity", Width: "1100px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Viscosity vs Temperature", Subtitle: ds.Provenance}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "T (°C)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "log10 η (Pa·s)", NameLocation: "middle", NameGap: 40}),
	)

	for i, sig := range g.Keys() {
		series := dataset.Project(g, sig)
		rep, ok := dataset.Representative(series)
		if !ok {
			continue
		}
		name := rep.Label
		if name == "" {
			name = fmt.Sprintf("group %d (SiO2 %.1f)", i+1, rep.SiO2)
		}
		pts := make([]opts.LineData, 0, len(series))
		for _, s := range series {
			pts = append(pts, opts.LineData{Value: []interface{}{s.Temperature, s.Viscosity}})
		}
		line.AddSeries(name, pts, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}))
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
