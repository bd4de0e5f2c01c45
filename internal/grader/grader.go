// Package grader turns a raw Lighthouse payload into the simplified
// score/issue report served to clients. Everything here is a pure function of
// the payload: the same input always yields the same Summary.
package grader

import (
	"math"
	"net/url"

	"github.com/raysh454/sokudo/internal/pagespeed"
)

const bytesPerMB = 1 << 20

// Summarize reduces a runPagespeed result to the UI-facing Summary.
// targetURL is the audited page; it anchors the external-host count.
func Summarize(res *pagespeed.Result, targetURL string) Summary {
	var s Summary

	if v, ok := res.PerformanceScore(); ok {
		s.Score = int(math.Round(v * 100))
	}

	if v, ok := res.AuditNumericValue(pagespeed.AuditLCP); ok {
		s.LCP = ptr(v / 1000) // ms -> s
	}
	if v, ok := res.AuditNumericValue(pagespeed.AuditCLS); ok {
		s.CLS = ptr(v)
	}
	if v, ok := res.AuditNumericValue(pagespeed.AuditINP); ok {
		s.INP = ptr(v)
	} else if v, ok := res.AuditNumericValue(pagespeed.AuditMaxFID); ok {
		s.INP = ptr(v)
	}

	var requestCount int
	if items, ok := res.NetworkItems(); ok {
		requestCount = len(items)
		s.Requests = ptr(requestCount)
	}

	if v, ok := res.AuditNumericValue(pagespeed.AuditTotalByteWeight); ok && v != 0 {
		s.PageSizeMB = ptr(v / bytesPerMB)
	}

	if v, ok := res.AuditNumericValue(pagespeed.AuditSpeedIndex); ok {
		s.LoadTimeS = ptr(v / 1000)
	} else if v, ok := res.AuditNumericValue(pagespeed.AuditInteractive); ok {
		s.LoadTimeS = ptr(v / 1000)
	}

	s.Issues = gradeIssues(res, targetURL, requestCount)
	return s
}

// gradeIssues applies the fixed rule catalog in order. Every rule emits
// exactly one issue, so the list always has the same length and order.
func gradeIssues(res *pagespeed.Result, targetURL string, requestCount int) []Issue {
	issues := make([]Issue, 0, 6)

	issues = append(issues, Issue{
		Key:   "http_requests",
		Label: "Make fewer HTTP requests",
		Grade: gradeRequestCount(requestCount),
		Tip:   "Combine scripts and stylesheets and lazy-load below-the-fold assets to cut the request count.",
	})

	issues = append(issues, Issue{
		Key:   "expires_headers",
		Label: "Add Expires headers",
		Grade: gradeAuditScore(res, pagespeed.AuditLongCacheTTL),
		Tip:   "Serve static assets with long Cache-Control max-age so repeat visits skip the network.",
	})

	issues = append(issues, Issue{
		Key:   "gzip",
		Label: "Compress components with gzip",
		Grade: gradeAuditScore(res, pagespeed.AuditTextCompression),
		Tip:   "Enable gzip or brotli for text responses (HTML, CSS, JS, JSON).",
	})

	issues = append(issues, Issue{
		Key:   "dns",
		Label: "Reduce DNS lookups",
		Grade: gradeExternalHosts(externalHostCount(res, targetURL)),
		Tip:   "Consolidate third-party hosts or preconnect to the ones you keep.",
	})

	issues = append(issues, Issue{
		Key:   "cookies",
		Label: "Reduce cookie size",
		Grade: GradeB,
		Tip:   "Keep cookies small and scope them away from static asset domains.",
	})

	issues = append(issues, Issue{
		Key:   "empty_src",
		Label: "Avoid empty src or href",
		Grade: GradeA,
		Tip:   "Empty src/href attributes still trigger requests in some browsers; remove them.",
	})

	return issues
}

func gradeRequestCount(n int) Grade {
	switch {
	case n > 90:
		return GradeF
	case n > 60:
		return GradeD
	case n > 40:
		return GradeC
	case n > 20:
		return GradeB
	default:
		return GradeA
	}
}

// gradeAuditScore maps a Lighthouse sub-score onto the letter ladder.
// A missing score grades C: unknown is treated as mediocre, not passing.
func gradeAuditScore(res *pagespeed.Result, name string) Grade {
	v, ok := res.AuditScore(name)
	if !ok {
		return GradeC
	}
	switch {
	case v >= 0.9:
		return GradeA
	case v >= 0.7:
		return GradeB
	case v >= 0.4:
		return GradeC
	default:
		return GradeD
	}
}

// externalHostCount counts distinct hosts among network-request items that
// differ from the audited page's own host. Items whose URL cannot be parsed
// (or has no host) are skipped; a bad row must never fail the audit.
func externalHostCount(res *pagespeed.Result, targetURL string) int {
	target, err := url.Parse(targetURL)
	if err != nil {
		return 0
	}

	items, _ := res.NetworkItems()
	seen := make(map[string]struct{})
	for _, item := range items {
		u, err := url.Parse(item.URL)
		if err != nil || u.Host == "" {
			continue
		}
		if u.Host == target.Host {
			continue
		}
		seen[u.Host] = struct{}{}
	}
	return len(seen)
}

func gradeExternalHosts(n int) Grade {
	switch {
	case n > 6:
		return GradeD
	case n > 4:
		return GradeC
	case n > 2:
		return GradeB
	default:
		return GradeA
	}
}

func ptr[T any](v T) *T { return &v }
