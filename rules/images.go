package rules

import (
	"fmt"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

// Alt-text coverage thresholds.
const (
	altCoverageGood        = 0.9
	altCoverageRecommended = 0.7
)

func checkImageAlt(doc *page.Document, _ []string) Verdict {
	if doc.ImageCount == 0 {
		return Verdict{
			Status:  report.StatusGood,
			Message: "이미지가 없어 확인할 항목이 없습니다.",
		}
	}

	withAlt := doc.ImageCount - doc.ImagesMissingAlt
	coverage := float64(withAlt) / float64(doc.ImageCount)
	details := fmt.Sprintf("전체 %d개 중 %d개 이미지에 대체 텍스트가 없습니다.", doc.ImageCount, doc.ImagesMissingAlt)

	switch {
	case coverage >= altCoverageGood:
		return Verdict{
			Status:  report.StatusGood,
			Message: "대부분의 이미지에 대체 텍스트(alt)가 지정되어 있습니다.",
			Details: details,
		}
	case coverage >= altCoverageRecommended:
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "일부 이미지에 대체 텍스트(alt)가 없습니다. 모든 이미지에 지정하는 것이 좋습니다.",
			Details: details,
		}
	default:
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "대체 텍스트(alt)가 없는 이미지가 많습니다. 이미지 내용을 설명하는 alt를 추가해주세요.",
			Details: details,
		}
	}
}
