package rules

import (
	"fmt"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

const (
	minInternalLinks = 3
	maxExternalShare = 0.5
)

func checkInternalLinks(doc *page.Document, _ []string) Verdict {
	details := fmt.Sprintf("내부 링크 %d개, 외부 링크 %d개", doc.InternalLinks, doc.ExternalLinks)

	switch {
	case doc.InternalLinks >= minInternalLinks:
		return Verdict{
			Status:  report.StatusGood,
			Message: "내부 링크가 충분히 구성되어 있습니다.",
			Details: details,
		}
	case doc.InternalLinks > 0:
		return Verdict{
			Status:  report.StatusRecommended,
			Message: fmt.Sprintf("내부 링크가 적습니다. %d개 이상 구성하는 것이 좋습니다.", minInternalLinks),
			Details: details,
		}
	default:
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "내부 링크가 없습니다. 사이트 내 관련 페이지로 연결해주세요.",
			Details: details,
		}
	}
}

func checkExternalRatio(doc *page.Document, _ []string) Verdict {
	total := doc.InternalLinks + doc.ExternalLinks
	if total == 0 {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "페이지에 링크가 없어 비중을 확인하지 못했습니다.",
		}
	}

	share := float64(doc.ExternalLinks) / float64(total)
	details := fmt.Sprintf("전체 %d개 중 외부 링크 %d개 (%.0f%%)", total, doc.ExternalLinks, share*100)

	if share > maxExternalShare {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "외부 링크 비중이 높습니다. 내부 콘텐츠 연결을 늘리는 것이 좋습니다.",
			Details: details,
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "내부/외부 링크 비중이 적절합니다.",
		Details: details,
	}
}
