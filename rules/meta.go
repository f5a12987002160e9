package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

const (
	descMinLen = 50
	descMaxLen = 160
)

func checkMetaDescription(doc *page.Document, _ []string) Verdict {
	if doc.MetaDescription == "" {
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "meta description이 없습니다. 페이지 내용을 요약한 설명을 추가해주세요.",
		}
	}

	length := utf8.RuneCountInString(doc.MetaDescription)
	details := fmt.Sprintf("현재 길이: %d자", length)

	if length < descMinLen || length > descMaxLen {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: fmt.Sprintf("설명 길이를 %d~%d자 사이로 조정하는 것이 좋습니다.", descMinLen, descMaxLen),
			Details: details,
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "메타 설명이 적절한 길이로 작성되어 있습니다.",
		Details: details,
	}
}

func checkDescriptionKeyword(doc *page.Document, keywords []string) Verdict {
	return keywordContainment(doc.MetaDescription, keywords, "메타 설명")
}
