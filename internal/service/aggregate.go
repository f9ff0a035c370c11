package service

import "github.com/frankasd12/NibbleCheck/internal/catalog"

// OverallStatus is the worst severity among hits. No hits means SAFE.
func OverallStatus(hits []Hit) catalog.Severity {
	worst := catalog.Safe
	for _, h := range hits {
		if h.Status.Rank() > worst.Rank() {
			worst = h.Status
		}
	}
	return worst
}
