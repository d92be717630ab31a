package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gocsvlab/domain/dataset"
)

// RetailGeneratorConfig configures the synthetic order generator
type RetailGeneratorConfig struct {
	Orders      int       `json:"orders"`
	MissingRate float64   `json:"missing_rate"` // chance a nullable cell is left empty
	OutlierRate float64   `json:"outlier_rate"` // chance an order quantity is inflated
	StartDate   time.Time `json:"start_date"`
	Days        int       `json:"days"`
	Seed        int64     `json:"seed"`
}

// DefaultRetailConfig returns sensible defaults for demo data
func DefaultRetailConfig() RetailGeneratorConfig {
	return RetailGeneratorConfig{
		Orders:      200,
		MissingRate: 0.05,
		OutlierRate: 0.02,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:        90,
		Seed:        42,
	}
}

// RetailColumns is the column order of generated records
var RetailColumns = []string{
	"order_id", "order_date", "region", "segment", "category",
	"quantity", "unit_price", "discount", "revenue", "returned",
}

var (
	regions    = []string{"North", "South", "East", "West"}
	segments   = []string{"Consumer", "Corporate", "Home Office"}
	categories = []string{"Furniture", "Technology", "Office Supplies"}
	basePrice  = map[string]float64{"Furniture": 220, "Technology": 410, "Office Supplies": 35}
)

// RetailGenerator produces deterministic order records
type RetailGenerator struct {
	config RetailGeneratorConfig
	rng    *rand.Rand
}

// NewRetailGenerator creates a generator seeded from config
func NewRetailGenerator(config RetailGeneratorConfig) *RetailGenerator {
	return &RetailGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns config.Orders records with columns RetailColumns
func (g *RetailGenerator) Generate() []dataset.Record {
	records := make([]dataset.Record, 0, g.config.Orders)
	for i := 0; i < g.config.Orders; i++ {
		records = append(records, g.order(i))
	}
	return records
}

func (g *RetailGenerator) order(i int) dataset.Record {
	category := categories[g.rng.Intn(len(categories))]
	quantity := 1 + g.rng.Intn(9)
	if g.rng.Float64() < g.config.OutlierRate {
		quantity *= 40
	}
	price := round2(basePrice[category] * (0.7 + 0.6*g.rng.Float64()))
	discount := float64(g.rng.Intn(4)) * 0.05
	revenue := round2(float64(quantity) * price * (1 - discount))
	day := g.config.StartDate.AddDate(0, 0, g.rng.Intn(max(g.config.Days, 1)))

	returned := "no"
	if g.rng.Float64() < 0.08 {
		returned = "yes"
	}

	return dataset.Record{
		{Name: "order_id", Value: dataset.NewTextValue(fmt.Sprintf("ORD-%05d", i+1))},
		{Name: "order_date", Value: dataset.NewTextValue(day.Format("2006-01-02"))},
		{Name: "region", Value: g.nullable(regions[g.rng.Intn(len(regions))])},
		{Name: "segment", Value: dataset.NewTextValue(segments[g.rng.Intn(len(segments))])},
		{Name: "category", Value: dataset.NewTextValue(category)},
		{Name: "quantity", Value: dataset.NewTextValue(fmt.Sprint(quantity))},
		{Name: "unit_price", Value: g.nullable(dataset.FormatNumber(price))},
		{Name: "discount", Value: dataset.NewTextValue(dataset.FormatNumber(discount))},
		{Name: "revenue", Value: g.nullable(dataset.FormatNumber(revenue))},
		{Name: "returned", Value: dataset.NewTextValue(returned)},
	}
}

func (g *RetailGenerator) nullable(s string) dataset.Value {
	if g.rng.Float64() < g.config.MissingRate {
		return dataset.NewMissingValue()
	}
	return dataset.NewTextValue(s)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
