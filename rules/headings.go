package rules

import (
	"fmt"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

func checkSingleH1(doc *page.Document, _ []string) Verdict {
	count := 0
	for _, h := range doc.Headings {
		if h.Level == 1 {
			count++
		}
	}

	switch {
	case count == 1:
		return Verdict{
			Status:  report.StatusGood,
			Message: "대표 제목(h1)이 하나만 사용되고 있습니다.",
		}
	case count == 0:
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "h1 태그가 없습니다. 페이지의 대표 제목을 h1으로 표시해주세요.",
		}
	default:
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "h1 태그가 여러 개 있습니다. 대표 제목은 하나만 사용하는 것이 좋습니다.",
			Details: fmt.Sprintf("h1 개수: %d개", count),
		}
	}
}

func checkHeadingOrder(doc *page.Document, _ []string) Verdict {
	if len(doc.Headings) == 0 {
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "제목 태그(h1~h6)가 없습니다. 콘텐츠 구조를 제목 태그로 표현해주세요.",
		}
	}

	// A heading may be at most one level deeper than the one before it
	// (h1 -> h3 without an h2 is a skipped level).
	prev := 0
	skips := 0
	for _, h := range doc.Headings {
		if h.Level > prev+1 {
			skips++
		}
		prev = h.Level
	}

	if skips > 0 {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "제목 태그의 계층이 건너뛰어진 부분이 있습니다. 단계적으로 사용하는 것이 좋습니다.",
			Details: fmt.Sprintf("건너뛴 단계: %d곳", skips),
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "제목 태그가 논리적인 계층 구조로 사용되고 있습니다.",
	}
}
