// Package analyzer orchestrates one diagnostic run: validate the request,
// fetch the page, extract its markup signals, evaluate the rule catalog, and
// aggregate the outcomes into the final report.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-diagnostic/backend/fetch"
	"github.com/seo-diagnostic/backend/page"
	"github.com/seo-diagnostic/backend/report"
	"github.com/seo-diagnostic/backend/rules"
)

// Request is one analysis request after boundary parsing.
type Request struct {
	URL      string
	Keywords []string
}

// Analyzer runs the diagnostic pipeline. Analyses are independent: the only
// shared state is the fetcher's cache, which is keyed per target.
type Analyzer struct {
	fetcher fetch.Fetcher
	logger  *zap.Logger
}

// New returns an Analyzer using the given fetcher.
func New(fetcher fetch.Fetcher, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{fetcher: fetcher, logger: logger}
}

// Analyze runs the full pipeline and returns either a complete report or a
// single typed error, never a partial report.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*report.Report, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	res, err := a.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, a.mapFetchError(req.URL, err)
	}

	if res.StatusCode >= 400 {
		a.logger.Info("target returned error status",
			zap.String("url", req.URL),
			zap.Int("status", res.StatusCode))
		return unreachableReport(res.StatusCode), nil
	}

	doc := page.Extract(res.Body, res.FinalURL, res.StatusCode)
	entries := rules.EvaluateAll(doc, req.Keywords)
	rep := report.Aggregate(entries)

	a.logger.Info("analysis complete",
		zap.String("url", req.URL),
		zap.Int("items", rep.Summary.Total),
		zap.Int("score", rep.OptimizationScore.TotalScore))

	return rep, nil
}

func validate(req *Request) error {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return invalidInput("URL을 입력해주세요")
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return invalidInput(invalidURLMessage)
	}

	if len(req.Keywords) > MaxKeywords {
		return invalidInput(fmt.Sprintf("키워드는 최대 %d개까지 입력할 수 있습니다.", MaxKeywords))
	}
	for i, kw := range req.Keywords {
		req.Keywords[i] = strings.TrimSpace(kw)
		if req.Keywords[i] == "" {
			return invalidInput("빈 키워드는 입력할 수 없습니다.")
		}
	}
	return nil
}

const (
	invalidURLMessage  = "올바른 URL 형식이 아닙니다. https://example.com 형식으로 입력해주세요."
	unreachableMessage = "페이지에 접속할 수 없습니다. URL을 확인해주세요."
)

func (a *Analyzer) mapFetchError(rawURL string, err error) error {
	var fe *fetch.Error
	if !errors.As(err, &fe) {
		a.logger.Error("fetch failed", zap.String("url", rawURL), zap.Error(err))
		return &Error{Kind: KindUnreachable, Message: unreachableMessage, Cause: err}
	}

	a.logger.Warn("fetch failed",
		zap.String("url", rawURL),
		zap.Int("kind", int(fe.Kind)),
		zap.Error(err))

	switch fe.Kind {
	case fetch.KindInvalidURL:
		return &Error{Kind: KindInvalidInput, Message: invalidURLMessage, Cause: err}
	case fetch.KindTimeout:
		return &Error{Kind: KindTimeout, Message: "페이지 응답이 너무 느려 분석을 중단했습니다. 잠시 후 다시 시도해주세요.", Cause: err}
	case fetch.KindTooLarge:
		return &Error{Kind: KindTooLarge, Message: "페이지 용량이 너무 커서 분석할 수 없습니다.", Cause: err}
	case fetch.KindTooManyRedirects:
		return &Error{Kind: KindTooManyRedirects, Message: "리디렉션이 너무 많아 분석을 중단했습니다.", Cause: err}
	default:
		return &Error{Kind: KindUnreachable, Message: unreachableMessage, Cause: err}
	}
}

// unreachableReport is the short-circuit result for pages that answered with
// an error status: a single category with one item and no score.
func unreachableReport(statusCode int) *report.Report {
	return &report.Report{
		Summary: report.Summary{Total: 1, NeedsImprovement: 1},
		Categories: []report.Category{
			{
				Name: "페이지 상태",
				Items: []report.Item{
					{
						Status:   report.StatusNeedsImprovement,
						Title:    "페이지 접근",
						Message:  fmt.Sprintf("페이지가 오류 상태(HTTP %d)를 반환하여 진단을 진행할 수 없습니다.", statusCode),
						Details:  "페이지가 정상 응답하는지 확인한 후 다시 시도해주세요.",
						GuideURL: "https://searchadvisor.naver.com/guide/seo-basic-intro",
					},
				},
			},
		},
	}
}
