package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ghost-dashboard/pkg/model"
)

// ErrNoData is returned when every value of a chart is zero
var ErrNoData = errors.New("chart has no data")

const (
	width  = 640
	height = 400
)

var segmentColors = map[model.SegmentKind]string{
	model.SegmentEnterprise: "#6366f1",
	model.SegmentSME:        "#06b6d4",
	model.SegmentGovernment: "#8b5cf6",
}

var segmentLabels = map[model.SegmentKind]string{
	model.SegmentEnterprise: "Enterprise",
	model.SegmentSME:        "SME",
	model.SegmentGovernment: "Government",
}

func fill(hex string) gochart.Style {
	c := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	return gochart.Style{FillColor: c, StrokeColor: c}
}

// RegionBar renders the orders-per-region bar chart as PNG
func RegionBar(w io.Writer, totals []model.RegionTotal) error {
	bars := make([]gochart.Value, 0, len(totals))
	sum := 0
	for _, t := range totals {
		sum += t.OrderCount
		bars = append(bars, gochart.Value{
			Label: t.Code,
			Value: float64(t.OrderCount),
			Style: fill(t.Color),
		})
	}
	if sum == 0 {
		return ErrNoData
	}

	graph := gochart.BarChart{
		Title:      "Orders by Region",
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Width:      width,
		Height:     height,
		BarWidth:   60,
		Bars:       bars,
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("error rendering region chart: %w", err)
	}
	return nil
}

// SegmentPie renders the orders-per-segment pie chart as PNG
func SegmentPie(w io.Writer, totals map[model.SegmentKind]int) error {
	values := make([]gochart.Value, 0, len(model.SegmentKinds))
	sum := 0
	for _, kind := range model.SegmentKinds {
		n := totals[kind]
		if n == 0 {
			continue
		}
		sum += n
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s (%d)", segmentLabels[kind], n),
			Value: float64(n),
			Style: fill(segmentColors[kind]),
		})
	}
	if sum == 0 {
		return ErrNoData
	}

	graph := gochart.PieChart{
		Title:  "Orders by Segment",
		Width:  height,
		Height: height,
		Values: values,
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("error rendering segment chart: %w", err)
	}
	return nil
}
