package dataset

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/go-playground/validator/v10"
	"github.com/transitflow/transitflow/pkg/tdf"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// Dataset is the immutable mock data every service is seeded with. It is
// parsed once at process start and never mutated afterwards.
type Dataset struct {
	Routes   []tdf.Route   `yaml:"routes" validate:"required,min=1"`
	Stops    []tdf.Stop    `yaml:"stops" validate:"required,min=1"`
	Vehicles []tdf.Vehicle `yaml:"vehicles" validate:"required,min=1"`

	ArrivalBoard []tdf.Arrival `yaml:"arrival_board" validate:"required,min=1"`

	Itinerary    tdf.Itinerary     `yaml:"itinerary"`
	Alternatives []tdf.Alternative `yaml:"alternatives" validate:"required,min=1"`
	Optimization Optimization      `yaml:"optimization"`

	Prediction Prediction `yaml:"prediction"`

	CrowdRules []CrowdRule `yaml:"crowd_rules" validate:"required,min=1,dive"`

	QueryRules    []QueryRule     `yaml:"query_rules" validate:"dive"`
	QueryFallback tdf.QueryResult `yaml:"query_fallback"`

	BusLineFallback []BusLineTemplate `yaml:"bus_line_fallback" validate:"required,min=1"`

	Latency Latency `yaml:"latency"`
}

type Optimization struct {
	Improvements []string `yaml:"improvements" validate:"required,min=1"`
	CarbonSaved  float64  `yaml:"carbon_saved"`
	TimeSaved    int      `yaml:"time_saved"`
}

type Prediction struct {
	ExpectedDelay float64  `yaml:"expected_delay" validate:"gte=0"`
	Confidence    float64  `yaml:"confidence" validate:"gte=0,lte=1"`
	Factors       []string `yaml:"factors" validate:"required,min=1"`

	// Minutes added to the current time to produce the recomputed arrival
	ArrivalOffsetMinutes int `yaml:"arrival_offset_minutes" validate:"gt=0"`
}

// CrowdRule is one entry in the ordered first-match-wins density rule list.
// When is a boolean expression over the hour of day.
type CrowdRule struct {
	When string `yaml:"when" validate:"required"`

	Density        tdf.CrowdDensityTier `yaml:"density" validate:"required,oneof=low medium high"`
	Level          int                  `yaml:"level" validate:"gte=0,lte=100"`
	Recommendation string               `yaml:"recommendation" validate:"required"`

	program *vm.Program
}

// Matches evaluates the rule's compiled expression against an hour of day
func (r *CrowdRule) Matches(hour int) (bool, error) {
	output, err := expr.Run(r.program, map[string]interface{}{"hour": hour})
	if err != nil {
		return false, err
	}

	return output.(bool), nil
}

// QueryRule matches free-text queries containing every keyword
type QueryRule struct {
	Keywords []string `yaml:"keywords" validate:"required,min=1"`

	Result tdf.QueryResult `yaml:",inline"`
}

type BusLineTemplate struct {
	Direction   string `yaml:"direction" validate:"required"`
	Destination string `yaml:"destination" validate:"required"`
}

type Latency struct {
	TransitMS int `yaml:"transit_ms"`
	PlannerMS int `yaml:"planner_ms"`
	AIMS      int `yaml:"ai_ms"`
}

func (l Latency) Transit() time.Duration { return time.Duration(l.TransitMS) * time.Millisecond }
func (l Latency) Planner() time.Duration { return time.Duration(l.PlannerMS) * time.Millisecond }
func (l Latency) AI() time.Duration      { return time.Duration(l.AIMS) * time.Millisecond }

// Load parses and validates the embedded dataset and compiles the crowd
// density rule expressions
func Load() (*Dataset, error) {
	return load(embeddedDataset)
}

func load(document []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(document, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	if len(ds.Itinerary.Legs) == 0 {
		return nil, fmt.Errorf("invalid dataset: itinerary must have at least one leg")
	}

	for i := range ds.CrowdRules {
		rule := &ds.CrowdRules[i]

		program, err := expr.Compile(rule.When, expr.Env(map[string]interface{}{"hour": 0}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("failed to compile crowd rule %q: %w", rule.When, err)
		}

		rule.program = program
	}

	return &ds, nil
}
