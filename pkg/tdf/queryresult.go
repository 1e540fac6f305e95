package tdf

type QueryIntent string

const (
	QueryIntentRoutePlanning QueryIntent = "route_planning"
	QueryIntentGeneralQuery  QueryIntent = "general_query"
)

type QueryResult struct {
	Intent QueryIntent `json:"intent" yaml:"intent"`

	Entities map[string]string `json:"entities" yaml:"entities"`

	Response string `json:"response" yaml:"response"`

	SuggestedAction string `json:"suggestedAction,omitempty" yaml:"suggested_action"`
}
