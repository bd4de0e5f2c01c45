package grader

// Grade is a school-style letter grade attached to an issue.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Issue is a derived, graded advisory surfaced to the caller.
type Issue struct {
	// Key is the stable rule identifier (e.g. "http_requests").
	Key string `json:"key"`

	// Label is the human-readable rule name shown in the UI.
	Label string `json:"label"`

	// Grade is the letter grade for this rule.
	Grade Grade `json:"grade"`

	// Tip is an optional remediation hint.
	Tip string `json:"tip,omitempty"`
}

// Summary is the simplified report returned to the client. Metrics that the
// upstream payload does not carry are null, not zero.
type Summary struct {
	// Score is the performance score scaled to 0-100.
	Score int `json:"score"`

	// LCP is largest contentful paint in seconds.
	LCP *float64 `json:"lcp"`

	// CLS is cumulative layout shift, unitless.
	CLS *float64 `json:"cls"`

	// INP is interaction to next paint in milliseconds (max-potential-fid
	// when INP itself is unavailable).
	INP *float64 `json:"inp"`

	// Requests is the number of network requests the page made.
	Requests *int `json:"requests"`

	// PageSizeMB is the total byte weight in mebibytes.
	PageSizeMB *float64 `json:"pageSizeMB"`

	// LoadTimeS is the speed index (or time to interactive) in seconds.
	LoadTimeS *float64 `json:"loadTimeS"`

	// Issues is the ordered list of graded advisories.
	Issues []Issue `json:"issues"`
}
