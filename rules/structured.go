package rules

import (
	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

func checkOpenGraph(doc *page.Document, _ []string) Verdict {
	if doc.HasOpenGraph {
		return Verdict{
			Status:  report.StatusGood,
			Message: "Open Graph 태그가 지정되어 있습니다.",
		}
	}
	return Verdict{
		Status:  report.StatusRecommended,
		Message: "Open Graph 태그가 없습니다. SNS 공유 시 표시될 제목과 이미지를 지정할 수 없습니다.",
	}
}

func checkJSONLD(doc *page.Document, _ []string) Verdict {
	if doc.HasJSONLD {
		return Verdict{
			Status:  report.StatusGood,
			Message: "JSON-LD 구조화 데이터가 포함되어 있습니다.",
		}
	}
	return Verdict{
		Status:  report.StatusRecommended,
		Message: "JSON-LD 구조화 데이터가 없습니다. 콘텐츠 유형에 맞는 구조화 데이터를 추가하는 것이 좋습니다.",
	}
}
