package rules

import (
	"net/url"
	"strings"

	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
)

func checkRobotsMeta(doc *page.Document, _ []string) Verdict {
	directives := strings.ToLower(doc.MetaRobots)

	if strings.Contains(directives, "noindex") || strings.Contains(directives, "none") {
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "robots 메타 태그가 검색 색인을 차단하고 있습니다. 의도한 설정인지 확인해주세요.",
			Details: "현재 설정: " + doc.MetaRobots,
		}
	}
	if strings.Contains(directives, "nofollow") {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "robots 메타 태그가 링크 추적을 차단하고 있습니다. 의도한 설정인지 확인해주세요.",
			Details: "현재 설정: " + doc.MetaRobots,
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "색인을 차단하는 robots 설정이 없습니다.",
	}
}

func checkCanonical(doc *page.Document, _ []string) Verdict {
	if doc.Canonical == "" {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "canonical 링크가 없습니다. 대표 URL을 지정하는 것이 좋습니다.",
		}
	}

	// Relative and protocol-relative hrefs resolve against the page itself,
	// so the domain comparison must happen on the resolved URL.
	base, baseErr := url.Parse(doc.FinalURL)
	ref, refErr := url.Parse(doc.Canonical)
	if baseErr != nil || refErr != nil {
		return Verdict{
			Status:  report.StatusNeedsImprovement,
			Message: "canonical 값이 올바른 URL 형식이 아닙니다. 설정을 확인해주세요.",
			Details: "canonical: " + doc.Canonical,
		}
	}
	resolved := base.ResolveReference(ref).String()

	if page.SameRegistrableDomain(resolved, doc.FinalURL) {
		return Verdict{
			Status:  report.StatusGood,
			Message: "대표 URL(canonical)이 지정되어 있습니다.",
			Details: "canonical: " + resolved,
		}
	}
	return Verdict{
		Status:  report.StatusNeedsImprovement,
		Message: "canonical이 다른 도메인을 가리키고 있습니다. 대표 URL 설정을 확인해주세요.",
		Details: "canonical: " + resolved,
	}
}

func checkHTMLLang(doc *page.Document, _ []string) Verdict {
	if doc.Lang == "" {
		return Verdict{
			Status:  report.StatusRecommended,
			Message: "html 태그에 lang 속성이 없습니다. 문서 언어를 명시하는 것이 좋습니다.",
		}
	}
	return Verdict{
		Status:  report.StatusGood,
		Message: "문서 언어(lang)가 지정되어 있습니다.",
		Details: "lang: " + doc.Lang,
	}
}

func checkViewport(doc *page.Document, _ []string) Verdict {
	if doc.HasViewport {
		return Verdict{
			Status:  report.StatusGood,
			Message: "모바일 viewport 메타 태그가 지정되어 있습니다.",
		}
	}
	return Verdict{
		Status:  report.StatusRecommended,
		Message: "viewport 메타 태그가 없습니다. 모바일 화면 대응을 위해 추가하는 것이 좋습니다.",
	}
}
