package demoserver

import (
	"fmt"
	"net/url"

	"github.com/raysh454/sokudo/internal/pagespeed"
)

// FixtureResult builds a representative Lighthouse payload for the given
// target. Network-request items mix same-host and third-party URLs so the
// dns rule has something to count.
func FixtureResult(target string) *pagespeed.Result {
	host := "example.com"
	if u, err := url.Parse(target); err == nil && u.Host != "" {
		host = u.Host
	}

	items := make([]pagespeed.AuditItem, 0, 34)
	items = append(items, pagespeed.AuditItem{URL: target})
	for i := 0; i < 30; i++ {
		items = append(items, pagespeed.AuditItem{
			URL: fmt.Sprintf("https://%s/assets/resource-%d.js", host, i),
		})
	}
	items = append(items,
		pagespeed.AuditItem{URL: "https://fonts.gstatic.com/s/font.woff2"},
		pagespeed.AuditItem{URL: "https://www.googletagmanager.com/gtag/js"},
		pagespeed.AuditItem{URL: "https://cdn.jsdelivr.net/npm/lib.min.js"},
	)

	return &pagespeed.Result{
		LighthouseResult: pagespeed.LighthouseResult{
			Categories: pagespeed.Categories{
				Performance: pagespeed.Category{Score: ptr(0.78)},
			},
			Audits: map[string]pagespeed.Audit{
				pagespeed.AuditLCP:             {NumericValue: ptr(2850.0)},
				pagespeed.AuditCLS:             {NumericValue: ptr(0.04)},
				pagespeed.AuditINP:             {NumericValue: ptr(210.0)},
				pagespeed.AuditSpeedIndex:      {NumericValue: ptr(4100.0)},
				pagespeed.AuditTotalByteWeight: {NumericValue: ptr(2359296.0)}, // 2.25 MiB
				pagespeed.AuditLongCacheTTL:    {Score: ptr(0.65)},
				pagespeed.AuditTextCompression: {Score: ptr(0.92)},
				pagespeed.AuditNetworkRequests: {Details: &pagespeed.AuditDetails{Items: items}},
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }
