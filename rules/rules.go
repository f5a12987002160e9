package rules

import (
	"sync"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

// CatalogVersion changes whenever a check, weight, or message changes in a
// way that affects output. Cached fetch results are keyed by it so stale
// evaluations never survive a catalog change.
const CatalogVersion = "2025-09"

// Verdict is what a check function decides about one criterion. Title and
// guide link are catalog metadata, not part of the verdict.
type Verdict struct {
	Status  report.Status
	Message string
	Details string
}

// Rule is one independent check bound to a category at registration time.
// Check must be pure: no mutation of the document, no I/O, no wall clock.
type Rule struct {
	ID       string
	Title    string
	Category string
	Weight   int
	GuideURL string
	Check    func(doc *page.Document, keywords []string) Verdict
}

// faultMessage replaces the verdict of a check that panicked. The run is
// never aborted by a single defective check.
const faultMessage = "진단 중 오류가 발생하여 이 항목을 확인하지 못했습니다. 잠시 후 다시 시도해주세요."

// EvaluateAll runs every catalog rule against the document and returns one
// entry per rule in catalog registration order. Rules run concurrently but
// write into their own slot, so output order is independent of scheduling.
func EvaluateAll(doc *page.Document, keywords []string) []report.Entry {
	entries := make([]report.Entry, len(catalog))

	var wg sync.WaitGroup
	for i, rule := range catalog {
		wg.Add(1)
		go func(i int, rule Rule) {
			defer wg.Done()
			v := safeCheck(rule, doc, keywords)
			entries[i] = report.Entry{
				Category: rule.Category,
				Weight:   rule.Weight,
				Item: report.Item{
					Status:   v.Status,
					Title:    rule.Title,
					Message:  v.Message,
					Details:  v.Details,
					GuideURL: rule.GuideURL,
				},
			}
		}(i, rule)
	}
	wg.Wait()

	return entries
}

// safeCheck contains a panicking check to a single downgraded verdict.
func safeCheck(rule Rule, doc *page.Document, keywords []string) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = Verdict{
				Status:  report.StatusNeedsImprovement,
				Message: faultMessage,
			}
		}
	}()
	return rule.Check(doc, keywords)
}

// Count returns the number of registered rules.
func Count() int {
	return len(catalog)
}
