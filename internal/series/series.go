// Package series prepares chart-ready data from a dataset state.
// Rendering is left to clients.
package series

import (
	"sort"
	"strings"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
)

// PieSlices is the number of categories a pie chart shows
const PieSlices = 8

// Aggregation reduces the y values of one group
type Aggregation string

const (
	AggCount Aggregation = "count"
	AggSum   Aggregation = "sum"
	AggAvg   Aggregation = "avg"
	AggMax   Aggregation = "max"
)

// ParseAggregation accepts count, sum, avg or max; empty means count
func ParseAggregation(s string) (Aggregation, error) {
	switch agg := Aggregation(strings.ToLower(strings.TrimSpace(s))); agg {
	case "":
		return AggCount, nil
	case AggCount, AggSum, AggAvg, AggMax:
		return agg, nil
	default:
		return "", core.NewInvalidParamsError("agg", "must be one of count, sum, avg, max")
	}
}

// Point is one named bar, line or pie value
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ScatterPoint is one x/y pair
type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// groups collects values per key in first-seen order
type groups struct {
	index map[string]int
	names []string
	vals  [][]float64
}

func newGroups() *groups {
	return &groups{index: make(map[string]int)}
}

func (g *groups) add(key string, v float64) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.names)
		g.index[key] = i
		g.names = append(g.names, key)
		g.vals = append(g.vals, nil)
	}
	g.vals[i] = append(g.vals[i], v)
}

func column(ds *dataset.Dataset, name string) ([]dataset.Value, error) {
	values, ok := ds.Column(name)
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return values, nil
}

// Frequency counts rows per distinct value of x, in first-seen order.
// Missing values are counted under "".
func Frequency(ds *dataset.Dataset, x string) ([]Point, error) {
	xs, err := column(ds, x)
	if err != nil {
		return nil, err
	}
	g := newGroups()
	for _, v := range xs {
		g.add(v.String(), 1)
	}
	points := make([]Point, len(g.names))
	for i, name := range g.names {
		points[i] = Point{Name: name, Value: float64(len(g.vals[i]))}
	}
	return points, nil
}

// Aggregate groups rows by the display form of x and reduces y with agg.
// A y value that does not coerce contributes 0.
func Aggregate(ds *dataset.Dataset, x, y string, agg Aggregation) ([]Point, error) {
	xs, err := column(ds, x)
	if err != nil {
		return nil, err
	}
	ys, err := column(ds, y)
	if err != nil {
		return nil, err
	}

	g := newGroups()
	for i, v := range xs {
		f, _ := ys[i].AsFloat64()
		g.add(v.String(), f)
	}

	points := make([]Point, len(g.names))
	for i, name := range g.names {
		points[i] = Point{Name: name, Value: reduce(g.vals[i], agg)}
	}
	return points, nil
}

// reduce is never called with an empty group
func reduce(values []float64, agg Aggregation) float64 {
	switch agg {
	case AggSum, AggAvg:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		if agg == AggAvg {
			return sum / float64(len(values))
		}
		return sum
	case AggMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	default:
		return float64(len(values))
	}
}

// TopN returns the n largest points, ties keeping their order
func TopN(points []Point, n int) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Scatter pairs x and y over rows where both coerce. Points are named by
// the groupBy column when given, otherwise "Point N" (1-based).
func Scatter(ds *dataset.Dataset, x, y, groupBy string) ([]ScatterPoint, error) {
	xs, err := column(ds, x)
	if err != nil {
		return nil, err
	}
	ys, err := column(ds, y)
	if err != nil {
		return nil, err
	}
	var names []dataset.Value
	if groupBy != "" {
		if names, err = column(ds, groupBy); err != nil {
			return nil, err
		}
	}

	points := make([]ScatterPoint, 0, len(xs))
	for i := range xs {
		fx, okX := xs[i].AsFloat64()
		fy, okY := ys[i].AsFloat64()
		if !okX || !okY {
			continue
		}
		p := ScatterPoint{X: fx, Y: fy}
		if names != nil {
			p.Name = names[i].String()
		} else {
			p.Name = "Point " + dataset.FormatNumber(float64(len(points)+1))
		}
		points = append(points, p)
	}
	return points, nil
}
