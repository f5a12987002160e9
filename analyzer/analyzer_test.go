package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seo-diagnostic/backend/fetch"
	"github.com/seo-diagnostic/backend/report"
	"github.com/seo-diagnostic/backend/rules"
)

const goodPageHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
	<title>네이버 검색 최적화를 위한 블로그 운영 안내</title>
	<meta name="description" content="네이버 검색 노출을 높이기 위한 블로그 운영 방법을 정리했습니다. 제목 작성법, 메타 태그 구성, 이미지 대체 텍스트까지 다룹니다.">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta property="og:title" content="블로그 운영 안내">
	<link rel="canonical" href="/guide">
	<script type="application/ld+json">{"@type":"Article"}</script>
</head>
<body>
	<h1>블로그 운영 안내</h1>
	<h2>제목 작성</h2>
	<h2>메타 태그</h2>
	<img src="/a.png" alt="예시 화면">
	<a href="/one">1</a><a href="/two">2</a><a href="/three">3</a>
	<a href="https://other.org">참고</a>
</body>
</html>`

const barePageHTML = `<html><body><p>내용 없음</p></body></html>`

func fixtureServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAnalyzer() *Analyzer {
	return New(fetch.NewClient(5*time.Second), nil)
}

// failingFetcher fails the test if any fetch is attempted.
type failingFetcher struct{ t *testing.T }

func (f *failingFetcher) Fetch(context.Context, string) (*fetch.Result, error) {
	f.t.Fatal("no network call may happen for invalid input")
	return nil, nil
}

func TestAnalyzeRejectsInvalidInputBeforeFetching(t *testing.T) {
	a := New(&failingFetcher{t: t}, nil)

	cases := []struct {
		name string
		req  Request
	}{
		{"empty url", Request{URL: ""}},
		{"whitespace url", Request{URL: "   "}},
		{"relative url", Request{URL: "/path/only"}},
		{"bad scheme", Request{URL: "ftp://example.com"}},
		{"too many keywords", Request{
			URL:      "https://example.com",
			Keywords: []string{"a", "b", "c", "d", "e", "f"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.Analyze(context.Background(), tc.req)
			var ae *Error
			require.ErrorAs(t, err, &ae)
			require.Equal(t, KindInvalidInput, ae.Kind)
			require.NotEmpty(t, ae.Message)
		})
	}
}

func TestAnalyzeEmptyURLMessage(t *testing.T) {
	a := New(&failingFetcher{t: t}, nil)

	_, err := a.Analyze(context.Background(), Request{URL: ""})
	var ae *Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, "URL을 입력해주세요", ae.Message)
}

func TestAnalyzeGoodPage(t *testing.T) {
	srv := fixtureServer(t, goodPageHTML)

	rep, err := newTestAnalyzer().Analyze(context.Background(), Request{
		URL:      srv.URL,
		Keywords: []string{"네이버"},
	})
	require.NoError(t, err)

	require.Equal(t, rules.Count(), rep.Summary.Total)
	require.Equal(t, rep.Summary.Total,
		rep.Summary.Good+rep.Summary.Recommended+rep.Summary.NeedsImprovement)

	require.NotNil(t, rep.OptimizationScore)
	require.GreaterOrEqual(t, rep.OptimizationScore.TotalScore, 0)
	require.LessOrEqual(t, rep.OptimizationScore.TotalScore, 100)
	require.Equal(t, report.Disclaimer, rep.OptimizationScore.Disclaimer)
}

func TestAnalyzeBarePage(t *testing.T) {
	srv := fixtureServer(t, barePageHTML)

	rep, err := newTestAnalyzer().Analyze(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)

	byTitle := make(map[string]report.Item)
	for _, cat := range rep.Categories {
		for _, item := range cat.Items {
			byTitle[item.Title] = item
		}
	}

	require.Equal(t, report.StatusNeedsImprovement, byTitle["페이지 제목(title)"].Status,
		"missing title must be flagged")
	require.Equal(t, report.StatusNeedsImprovement, byTitle["메타 설명(description)"].Status,
		"missing description must be flagged")
}

func TestAnalyzeDeterministic(t *testing.T) {
	srv := fixtureServer(t, goodPageHTML)
	a := newTestAnalyzer()
	req := Request{URL: srv.URL, Keywords: []string{"네이버", "최적화"}}

	first, err := a.Analyze(context.Background(), req)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := a.Analyze(context.Background(), Request{URL: srv.URL, Keywords: []string{"네이버", "최적화"}})
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		require.Equal(t, string(firstJSON), string(againJSON),
			"same page and keywords must yield byte-identical reports")
	}
}

func TestAnalyzeItemCountIndependentOfKeywords(t *testing.T) {
	srv := fixtureServer(t, goodPageHTML)
	a := newTestAnalyzer()

	with, err := a.Analyze(context.Background(), Request{URL: srv.URL, Keywords: []string{"네이버"}})
	require.NoError(t, err)
	without, err := a.Analyze(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)

	require.Equal(t, with.Summary.Total, without.Summary.Total)
}

func TestAnalyzeCategoryOrderStable(t *testing.T) {
	srv := fixtureServer(t, goodPageHTML)
	a := newTestAnalyzer()

	var orders [][]string
	for i := 0; i < 10; i++ {
		rep, err := a.Analyze(context.Background(), Request{URL: srv.URL})
		require.NoError(t, err)

		names := make([]string, 0, len(rep.Categories))
		for _, cat := range rep.Categories {
			names = append(names, cat.Name)
		}
		orders = append(orders, names)
	}

	for _, names := range orders[1:] {
		require.Equal(t, orders[0], names,
			"category order must not depend on rule scheduling")
	}
}

func TestAnalyzeTimeoutIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	t.Cleanup(srv.Close)

	a := New(fetch.NewClient(50*time.Millisecond), nil)
	rep, err := a.Analyze(context.Background(), Request{URL: srv.URL})

	require.Nil(t, rep, "a timed-out fetch must not yield a partial report")
	var ae *Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, KindTimeout, ae.Kind)
}

func TestAnalyzeErrorStatusShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	rep, err := newTestAnalyzer().Analyze(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)

	require.Len(t, rep.Categories, 1)
	require.Equal(t, "페이지 상태", rep.Categories[0].Name)
	require.Len(t, rep.Categories[0].Items, 1)
	require.Equal(t, report.StatusNeedsImprovement, rep.Categories[0].Items[0].Status)
	require.Equal(t, 1, rep.Summary.Total)
	require.Nil(t, rep.OptimizationScore, "no score is computed for an unreachable page")
}

func TestParseKeywords(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "네이버 SEO", []string{"네이버 SEO"}},
		{"trims parts", "  네이버 SEO ,  검색엔진 최적화 ", []string{"네이버 SEO", "검색엔진 최적화"}},
		{"drops empties", "a,,b, ,c", []string{"a", "b", "c"}},
		{
			"caps at five in order",
			"네이버 SEO, 검색엔진 최적화, a, b, c, d",
			[]string{"네이버 SEO", "검색엔진 최적화", "a", "b", "c"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseKeywords(tc.raw))
		})
	}
}
