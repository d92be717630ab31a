package series

import (
	"strings"

	"gocsvlab/domain/core"
	"gocsvlab/domain/profiling"
	"gocsvlab/domain/snapshot"
)

// Kind is a chart type
type Kind string

const (
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// ParseKind accepts bar, line, pie or scatter; empty means bar
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindBar, nil
	case KindBar, KindLine, KindPie, KindScatter:
		return k, nil
	default:
		return "", core.NewInvalidParamsError("kind", "must be one of bar, line, pie, scatter")
	}
}

// Request selects the chart and its columns
type Request struct {
	Kind    Kind
	X       string
	Y       string
	GroupBy string
	Agg     Aggregation
}

// Chart is the data for one chart. Only one of Points and Scatter is set.
type Chart struct {
	Kind    Kind           `json:"kind"`
	X       string         `json:"x"`
	Y       string         `json:"y,omitempty"`
	Agg     Aggregation    `json:"agg,omitempty"`
	Points  []Point        `json:"points,omitempty"`
	Scatter []ScatterPoint `json:"scatter,omitempty"`
}

// Build prepares the series for req. Bar and line charts aggregate a
// numeric y over a categorical x, or count x alone; pies show the top
// categories of x; scatter needs two numeric columns. Column types that do
// not fit the chart yield an empty series.
func Build(state *snapshot.DatasetState, req Request) (Chart, error) {
	if req.X == "" {
		return Chart{}, core.NewInvalidParamsError("x", "is required")
	}
	if req.Agg == "" {
		req.Agg = AggCount
	}
	ds := state.Data
	for _, col := range []string{req.X, req.Y, req.GroupBy} {
		if col != "" && !ds.HasColumn(col) {
			return Chart{}, core.NewColumnNotFoundError(col)
		}
	}
	chart := Chart{Kind: req.Kind, X: req.X, Y: req.Y}
	xType := state.Types.Of(req.X)
	yType := state.Types.Of(req.Y)

	var err error
	switch req.Kind {
	case KindBar, KindLine:
		switch {
		case xType != profiling.TypeCategorical:
		case req.Y != "" && yType == profiling.TypeNumeric:
			chart.Agg = req.Agg
			chart.Points, err = Aggregate(ds, req.X, req.Y, req.Agg)
		default:
			chart.Points, err = Frequency(ds, req.X)
		}
	case KindPie:
		if xType == profiling.TypeCategorical {
			var points []Point
			points, err = Frequency(ds, req.X)
			chart.Points = TopN(points, PieSlices)
		}
	case KindScatter:
		if req.Y == "" {
			return Chart{}, core.NewInvalidParamsError("y", "is required for scatter charts")
		}
		if xType == profiling.TypeNumeric && yType == profiling.TypeNumeric {
			chart.Scatter, err = Scatter(ds, req.X, req.Y, req.GroupBy)
		}
	default:
		return Chart{}, core.NewInvalidParamsError("kind", "unsupported chart kind "+string(req.Kind))
	}
	if err != nil {
		return Chart{}, err
	}
	return chart, nil
}

// Recommendation suggests a chart for the current columns
type Recommendation struct {
	Kind        Kind        `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	X           string      `json:"x"`
	Y           string      `json:"y,omitempty"`
	Agg         Aggregation `json:"agg,omitempty"`
}

// Recommend suggests charts from the first categorical and numeric columns
func Recommend(state *snapshot.DatasetState) []Recommendation {
	var categorical, numeric []string
	for _, col := range state.Columns() {
		switch state.Types.Of(col) {
		case profiling.TypeCategorical:
			categorical = append(categorical, col)
		case profiling.TypeNumeric:
			numeric = append(numeric, col)
		}
	}

	recs := make([]Recommendation, 0, 4)
	if len(categorical) > 0 {
		recs = append(recs,
			Recommendation{
				Kind:        KindBar,
				Title:       "Categorical Distribution",
				Description: "Visualize frequency of " + categorical[0],
				X:           categorical[0],
			},
			Recommendation{
				Kind:        KindPie,
				Title:       "Categorical Breakdown",
				Description: "Show proportions of " + categorical[0],
				X:           categorical[0],
			})
	}
	if len(numeric) >= 2 {
		recs = append(recs, Recommendation{
			Kind:        KindScatter,
			Title:       "Correlation Analysis",
			Description: "Explore relationship between " + numeric[0] + " and " + numeric[1],
			X:           numeric[0],
			Y:           numeric[1],
		})
	}
	if len(categorical) > 0 && len(numeric) > 0 {
		recs = append(recs, Recommendation{
			Kind:        KindBar,
			Title:       "Grouped Analysis",
			Description: "Compare " + numeric[0] + " across " + categorical[0],
			X:           categorical[0],
			Y:           numeric[0],
			Agg:         AggAvg,
		})
	}
	return recs
}
