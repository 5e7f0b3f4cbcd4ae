package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/domain/models"
)

// Plot geometry of the SVG bar chart, in SVG user units.
const (
	chartWidth   = 960
	chartHeight  = 420
	marginLeft   = 80
	marginRight  = 16
	marginTop    = 16
	marginBottom = 48

	yTicks    = 5
	maxXTicks = 6
)

type bar struct {
	X, Y, W, H float64
	Title      string
}

type axisLabel struct {
	Pos  float64
	Text string
}

// chartView is everything the template needs to draw the series:
// time on the x axis, price on the y axis, bars rising from zero.
type chartView struct {
	Width, Height       int
	PlotLeft, PlotRight float64
	PlotTop, PlotBottom float64
	Bars                []bar
	YLabels             []axisLabel
	XLabels             []axisLabel
}

// buildChartView lays out one bar per point in series order.
// It returns nil for an empty series.
func buildChartView(series models.PriceSeries, interval chart.Interval) *chartView {
	if len(series) == 0 {
		return nil
	}

	v := &chartView{
		Width:      chartWidth,
		Height:     chartHeight,
		PlotLeft:   marginLeft,
		PlotRight:  chartWidth - marginRight,
		PlotTop:    marginTop,
		PlotBottom: chartHeight - marginBottom,
	}
	plotW := v.PlotRight - v.PlotLeft
	plotH := v.PlotBottom - v.PlotTop

	_, hi := series.MinMax()
	top := hi.InexactFloat64()
	if top <= 0 {
		top = 1
	}

	slot := plotW / float64(len(series))
	gap := slot * 0.1
	timeLayout := "01-02 15:04"
	if interval.Step() >= 24*time.Hour {
		timeLayout = chart.DayLayout
	}

	v.Bars = make([]bar, 0, len(series))
	for i, p := range series {
		price := p.Price.InexactFloat64()
		if price < 0 {
			price = 0
		}
		h := price / top * plotH
		v.Bars = append(v.Bars, bar{
			X:     v.PlotLeft + float64(i)*slot + gap/2,
			Y:     v.PlotBottom - h,
			W:     slot - gap,
			H:     h,
			Title: p.Time.Format("2006-01-02 15:04") + " UTC: $" + p.Price.StringFixed(2),
		})
	}

	for i := 0; i <= yTicks; i++ {
		val := top * float64(i) / yTicks
		v.YLabels = append(v.YLabels, axisLabel{
			Pos:  v.PlotBottom - plotH*float64(i)/yTicks,
			Text: decimal.NewFromFloat(val).StringFixed(priceDecimals(top)),
		})
	}

	step := (len(series) + maxXTicks - 1) / maxXTicks
	for i := 0; i < len(series); i += step {
		v.XLabels = append(v.XLabels, axisLabel{
			Pos:  v.PlotLeft + (float64(i)+0.5)*slot,
			Text: series[i].Time.Format(timeLayout),
		})
	}
	return v
}

// priceDecimals picks label precision so sub-dollar assets stay readable.
func priceDecimals(top float64) int32 {
	switch {
	case top >= 100:
		return 0
	case top >= 1:
		return 2
	default:
		return 6
	}
}
