package report

// Status classifies the outcome of a single check. The three values are the
// only ones the aggregator and the client understand.
type Status string

const (
	StatusGood             Status = "good"
	StatusRecommended      Status = "recommended"
	StatusNeedsImprovement Status = "needs_improvement"
)

// Item is the result of one check as delivered to the client.
type Item struct {
	Status   Status `json:"status"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	GuideURL string `json:"guide_url"`
}

// Category groups related items under a display name. Item order inside a
// category follows catalog registration order.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Summary holds the tally of items by status across the whole report.
type Summary struct {
	Total            int `json:"total"`
	Good             int `json:"good"`
	Recommended      int `json:"recommended"`
	NeedsImprovement int `json:"needs_improvement"`
}

// OptimizationScore is the derived 0-100 heuristic figure. Disclaimer is a
// fixed compliance string and must always be populated.
type OptimizationScore struct {
	TotalScore int    `json:"total_score"`
	Grade      string `json:"grade"`
	Disclaimer string `json:"disclaimer"`
}

// Report is the complete output of one analysis. OptimizationScore is nil
// when no score was computed (e.g. the page returned an error status).
type Report struct {
	Summary           Summary            `json:"summary"`
	OptimizationScore *OptimizationScore `json:"optimization_score,omitempty"`
	Categories        []Category         `json:"categories"`
}

// Entry is one evaluated check together with the catalog metadata the
// aggregator needs. Weight is a fixed catalog constant, never derived from
// the run itself.
type Entry struct {
	Category string
	Weight   int
	Item     Item
}
