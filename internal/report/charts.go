package report

import (
	"io"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteCharts renders the payment composition and balance decay charts for
// one schedule as a single HTML page. Decimals are flattened to float64 here;
// that is fine for plotting, the engine output stays authoritative.
func WriteCharts(w io.Writer, mode mortgage.Mode, schedule mortgage.Schedule) error {
	months := make([]string, len(schedule))
	interest := make([]opts.BarData, len(schedule))
	principal := make([]opts.BarData, len(schedule))
	balance := make([]opts.LineData, len(schedule))

	for i, entry := range schedule {
		months[i] = strconv.Itoa(entry.Month)
		interest[i] = opts.BarData{Value: entry.InterestPart.InexactFloat64()}
		principal[i] = opts.BarData{Value: entry.PrincipalPart.InexactFloat64()}
		balance[i] = opts.LineData{Value: entry.Balance.InexactFloat64()}
	}

	subtitle := "Mortgage"
	if mode == mortgage.ModeInstallment {
		subtitle = "Installment plan"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Payment composition", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
	)
	bar.SetXAxis(months).
		AddSeries("Interest", interest).
		AddSeries("Principal", principal).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "payment"}))

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Remaining balance", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
	)
	line.SetXAxis(months).
		AddSeries("Balance", balance).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}),
		)

	page := components.NewPage()
	page.PageTitle = "Payment schedule charts"
	page.AddCharts(bar, line)

	if err := page.Render(w); err != nil {
		return apperrors.WrapExportError(err, "failed to render schedule charts")
	}
	return nil
}
