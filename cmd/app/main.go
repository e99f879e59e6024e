// Command app renders a Voronoi diagram over a random or grid layout of
// point stations and writes it as a standalone HTML chart.
package main

import (
	"flag"
	"math"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vorolib/voronoi/pkg/builder"
	"github.com/vorolib/voronoi/pkg/logger"
	"github.com/vorolib/voronoi/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Station is one point site to diagram, in floating-point layout
// coordinates before they are quantized down to the engine's integer Point.
type Station struct {
	X, Y float64
}

func generateRandStations(n int, width, height int) []Station {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	stations := make([]Station, n)
	for i := 0; i < n; i++ {
		stations[i] = Station{X: float64(r.Intn(width)), Y: float64(r.Intn(height))}
	}
	return stations
}

func generateFixStations(n int, width, height int) []Station {
	stations := make([]Station, 0, n)

	rows := int(math.Sqrt(float64(n)))
	if rows == 0 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if len(stations) >= n {
				break
			}
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			stations = append(stations, Station{X: x, Y: y})
		}
	}
	return stations
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "720px",
			Width:  "1080px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Voronoi diagram",
			Left:  "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// diagramToScatter overlays every resolved (finite) bisector on a scatter
// plot of the input stations. Half-edges left unresolved by the sweep — a
// site on the outer hull, whose bisector never met a circle event — are
// skipped, since a chart has no way to draw a ray to infinity.
func diagramToScatter(stations []Station, diagram *builder.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter)

	points := make([]opts.ScatterData, 0, len(stations))
	for _, s := range stations {
		points = append(points, opts.ScatterData{Value: []float64{s.X, s.Y}})
	}
	scatter.AddSeries("stations", points).SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "lightgreen"}),
	)

	for _, edge := range diagram.Edges {
		if edge.Start == nil || edge.End == nil {
			continue
		}
		line := charts.NewLine()
		line.AddSeries("bisectors", []opts.LineData{
			{Value: []float64{edge.Start.X, edge.Start.Y}},
			{Value: []float64{edge.End.X, edge.End.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
		)
		scatter.Overlap(line)
	}

	return scatter
}

func main() {
	width := flag.Int("width", 1000, "layout width")
	height := flag.Int("height", 1000, "layout height")
	stations := flag.Int("stations", 24, "number of point sites")
	random := flag.Bool("random", true, "scatter stations randomly instead of on a grid")
	out := flag.String("out", "voronoi.html", "output HTML file")
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	var pts []Station
	if *random {
		pts = generateRandStations(*stations, *width, *height)
	} else {
		pts = generateFixStations(*stations, *width, *height)
	}

	v := voronoi.New(voronoi.WithLogger(log))
	for _, p := range pts {
		v.InsertPoint(voronoi.Point{X: int32(p.X), Y: int32(p.Y)})
	}

	ob := builder.New()
	if err := v.Construct(ob); err != nil {
		log.Fatal("construction failed", zap.Error(err))
	}

	diagram := ob.Diagram()
	log.Info("diagram built",
		zap.Int("cells", len(diagram.Cells)),
		zap.Int("edges", len(diagram.Edges)),
		zap.Int("vertices", len(diagram.Vertices)),
	)

	scatter := diagramToScatter(pts, diagram)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("creating output file", zap.Error(err))
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		log.Fatal("rendering chart", zap.Error(err))
	}
	log.Info("wrote diagram", zap.String("path", *out))
}
