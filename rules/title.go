package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

// Recommended title length band in characters. Korean titles carry more
// information per character than Latin ones, so the band is tighter than the
// usual 30-60 byte guidance.
const (
	titleMinLen = 10
	titleMaxLen = 40
)

const noKeywordMessage = "타겟 키워드가 입력되지 않아 포함 여부를 확인하지 못했습니다. 키워드를 입력하면 더 정확한 진단을 받을 수 있습니다."

func checkTitleLength(doc *page.Document, _ []string) Verdict {
	if doc.Title == "" {
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "title 태그가 없습니다. 페이지 내용을 대표하는 제목을 추가해주세요.",
		}
	}

	length := utf8.RuneCountInString(doc.Title)
	details := fmt.Sprintf("현재 제목: %q (%d자)", doc.Title, length)

	if length < titleMinLen || length > titleMaxLen {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: fmt.Sprintf("제목 길이를 %d~%d자 사이로 조정하는 것이 좋습니다.", titleMinLen, titleMaxLen),
			Details: details,
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "제목이 적절한 길이로 작성되어 있습니다.",
		Details: details,
	}
}

func checkTitleKeyword(doc *page.Document, keywords []string) Verdict {
	return keywordContainment(doc.Title, keywords, "제목")
}

// keywordContainment is the shared verdict logic for keyword rules. With no
// keywords supplied the verdict degrades to a neutral recommendation instead
// of being skipped, so the report item count is stable either way.
func keywordContainment(text string, keywords []string, fieldName string) Verdict {
	if len(keywords) == 0 {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: noKeywordMessage,
		}
	}

	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	if len(matched) > 0 {
		return Verdict{
			Status:  report.StatusGood,
			Message: fmt.Sprintf("%s에 타겟 키워드가 포함되어 있습니다.", fieldName),
			Details: "포함된 키워드: " + strings.Join(matched, ", "),
		}
	}
	return Verdict{
		Status:  report.StatusNeedsImprovement,
		Message: fmt.Sprintf("%s에 타겟 키워드가 포함되어 있지 않습니다.", fieldName),
		Details: "입력한 키워드: " + strings.Join(keywords, ", "),
	}
}
