package pagespeed

// Audit names the grader consumes. They match the Lighthouse audit ids in the
// runPagespeed v5 payload.
const (
	AuditLCP             = "largest-contentful-paint"
	AuditCLS             = "cumulative-layout-shift"
	AuditINP             = "interaction-to-next-paint"
	AuditMaxFID          = "max-potential-fid"
	AuditNetworkRequests = "network-requests"
	AuditTotalByteWeight = "total-byte-weight"
	AuditSpeedIndex      = "speed-index"
	AuditInteractive     = "interactive"
	AuditLongCacheTTL    = "uses-long-cache-ttl"
	AuditTextCompression = "uses-text-compression"
)

// Result models the slice of the runPagespeed response this service consumes.
// Every leaf that may be missing upstream is a pointer so absence stays
// distinguishable from zero.
type Result struct {
	LighthouseResult LighthouseResult `json:"lighthouseResult"`
}

// LighthouseResult carries the category scores and the per-audit results.
type LighthouseResult struct {
	Categories Categories       `json:"categories"`
	Audits     map[string]Audit `json:"audits"`
}

type Categories struct {
	Performance Category `json:"performance"`
}

// Category is a Lighthouse category; Score is in [0,1].
type Category struct {
	Score *float64 `json:"score"`
}

// Audit is one named Lighthouse measurement. Score is the audit's own
// normalized sub-score in [0,1]; NumericValue is the raw measurement
// (milliseconds, bytes or unitless depending on the audit).
type Audit struct {
	Score        *float64      `json:"score,omitempty"`
	NumericValue *float64      `json:"numericValue,omitempty"`
	Details      *AuditDetails `json:"details,omitempty"`
}

type AuditDetails struct {
	Items []AuditItem `json:"items,omitempty"`
}

// AuditItem is one row of an audit's details table. Only the url column is
// consumed (network-requests rows).
type AuditItem struct {
	URL string `json:"url,omitempty"`
}

// PerformanceScore returns the performance category score in [0,1].
func (r *Result) PerformanceScore() (float64, bool) {
	s := r.LighthouseResult.Categories.Performance.Score
	if s == nil {
		return 0, false
	}
	return *s, true
}

// AuditNumericValue returns the named audit's numericValue.
func (r *Result) AuditNumericValue(name string) (float64, bool) {
	a, ok := r.LighthouseResult.Audits[name]
	if !ok || a.NumericValue == nil {
		return 0, false
	}
	return *a.NumericValue, true
}

// AuditScore returns the named audit's sub-score in [0,1].
func (r *Result) AuditScore(name string) (float64, bool) {
	a, ok := r.LighthouseResult.Audits[name]
	if !ok || a.Score == nil {
		return 0, false
	}
	return *a.Score, true
}

// NetworkItems returns the network-requests rows. ok is false when the audit
// itself is absent; an audit with an empty item list returns ok=true.
func (r *Result) NetworkItems() ([]AuditItem, bool) {
	a, ok := r.LighthouseResult.Audits[AuditNetworkRequests]
	if !ok {
		return nil, false
	}
	if a.Details == nil {
		return nil, true
	}
	return a.Details.Items, true
}
