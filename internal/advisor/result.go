package advisor

import "encoding/json"

// Result is either a DBResult (curated route) or an AIResult (generated
// answer). A single Resolve call never mixes the two variants.
type Result interface {
	resultKind() string
}

// DBResult is one curated route rendered for the rider.
type DBResult struct {
	TotalPrice int      `json:"total_price"`
	TotalTime  int      `json:"total_time"`
	Tag        string   `json:"tag"`
	Steps      []string `json:"steps"`
}

func (DBResult) resultKind() string { return "db" }

func (r DBResult) MarshalJSON() ([]byte, error) {
	type alias DBResult
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: r.resultKind(), alias: alias(r)})
}

// Source says where an AI answer came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceLive  Source = "live"
)

// AIResult is a generated narrative answer.
type AIResult struct {
	Content string `json:"content"`
	Source  Source `json:"source"`
}

func (AIResult) resultKind() string { return "ai" }

func (r AIResult) MarshalJSON() ([]byte, error) {
	type alias AIResult
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: r.resultKind(), alias: alias(r)})
}
