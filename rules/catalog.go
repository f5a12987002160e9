package rules

// Category display names. Registration order below is the order categories
// and items appear in the final report.
const (
	CategoryMeta       = "기본 메타 정보"
	CategoryStructure  = "콘텐츠 구조"
	CategoryImages     = "이미지 접근성"
	CategoryIndexing   = "색인 및 크롤링"
	CategoryStructured = "구조화 데이터"
	CategoryLinks      = "링크 구성"
)

// Guide links are static catalog metadata pointing at the Naver Search
// Advisor documentation for each criterion.
const (
	guideTitle  = "https://searchadvisor.naver.com/guide/seo-basic-title"
	guideMeta   = "https://searchadvisor.naver.com/guide/seo-basic-meta"
	guideMarkup = "https://searchadvisor.naver.com/guide/seo-basic-markup"
	guideImage  = "https://searchadvisor.naver.com/guide/seo-basic-image"
	guideRobots = "https://searchadvisor.naver.com/guide/seo-basic-robots"
	guideCanon  = "https://searchadvisor.naver.com/guide/seo-advanced-canonical"
	guideMobile = "https://searchadvisor.naver.com/guide/seo-basic-mobile"
	guideSNS    = "https://searchadvisor.naver.com/guide/seo-advanced-sns"
	guideJSONLD = "https://searchadvisor.naver.com/guide/seo-advanced-markup"
	guideLinks  = "https://searchadvisor.naver.com/guide/seo-basic-intro"
)

var catalog = []Rule{
	{
		ID:       "title-length",
		Title:    "페이지 제목(title)",
		Category: CategoryMeta,
		Weight:   3,
		GuideURL: guideTitle,
		Check:    checkTitleLength,
	},
	{
		ID:       "title-keyword",
		Title:    "제목 내 타겟 키워드",
		Category: CategoryMeta,
		Weight:   2,
		GuideURL: guideTitle,
		Check:    checkTitleKeyword,
	},
	{
		ID:       "meta-description",
		Title:    "메타 설명(description)",
		Category: CategoryMeta,
		Weight:   3,
		GuideURL: guideMeta,
		Check:    checkMetaDescription,
	},
	{
		ID:       "meta-description-keyword",
		Title:    "설명 내 타겟 키워드",
		Category: CategoryMeta,
		Weight:   2,
		GuideURL: guideMeta,
		Check:    checkDescriptionKeyword,
	},
	{
		ID:       "single-h1",
		Title:    "대표 제목(h1)",
		Category: CategoryStructure,
		Weight:   2,
		GuideURL: guideMarkup,
		Check:    checkSingleH1,
	},
	{
		ID:       "heading-order",
		Title:    "제목 태그 계층 구조",
		Category: CategoryStructure,
		Weight:   1,
		GuideURL: guideMarkup,
		Check:    checkHeadingOrder,
	},
	{
		ID:       "image-alt",
		Title:    "이미지 대체 텍스트",
		Category: CategoryImages,
		Weight:   2,
		GuideURL: guideImage,
		Check:    checkImageAlt,
	},
	{
		ID:       "robots-meta",
		Title:    "robots 메타 태그",
		Category: CategoryIndexing,
		Weight:   3,
		GuideURL: guideRobots,
		Check:    checkRobotsMeta,
	},
	{
		ID:       "canonical",
		Title:    "대표 URL(canonical)",
		Category: CategoryIndexing,
		Weight:   2,
		GuideURL: guideCanon,
		Check:    checkCanonical,
	},
	{
		ID:       "html-lang",
		Title:    "문서 언어(lang)",
		Category: CategoryIndexing,
		Weight:   1,
		GuideURL: guideMarkup,
		Check:    checkHTMLLang,
	},
	{
		ID:       "viewport",
		Title:    "모바일 viewport",
		Category: CategoryIndexing,
		Weight:   1,
		GuideURL: guideMobile,
		Check:    checkViewport,
	},
	{
		ID:       "open-graph",
		Title:    "Open Graph 태그",
		Category: CategoryStructured,
		Weight:   1,
		GuideURL: guideSNS,
		Check:    checkOpenGraph,
	},
	{
		ID:       "json-ld",
		Title:    "JSON-LD 구조화 데이터",
		Category: CategoryStructured,
		Weight:   1,
		GuideURL: guideJSONLD,
		Check:    checkJSONLD,
	},
	{
		ID:       "internal-links",
		Title:    "내부 링크",
		Category: CategoryLinks,
		Weight:   1,
		GuideURL: guideLinks,
		Check:    checkInternalLinks,
	},
	{
		ID:       "external-link-ratio",
		Title:    "외부 링크 비중",
		Category: CategoryLinks,
		Weight:   1,
		GuideURL: guideLinks,
		Check:    checkExternalRatio,
	},
}
