package page

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

// Extract parses the fetched HTML into a Document. It never fails: malformed
// markup degrades to absent or zero-valued fields so the rule catalog always
// receives a well-typed document.
func Extract(html []byte, finalURL string, statusCode int) *Document {
	doc := &Document{
		FinalURL:   finalURL,
		StatusCode: statusCode,
	}

	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return doc
	}

	doc.Title = normalizeSpace(gq.Find("title").First().Text())

	if desc, ok := gq.Find("meta[name='description']").First().Attr("content"); ok {
		doc.MetaDescription = normalizeSpace(desc)
	}
	if robots, ok := gq.Find("meta[name='robots']").First().Attr("content"); ok {
		doc.MetaRobots = normalizeSpace(strings.ToLower(robots))
	}
	if canonical, ok := gq.Find("link[rel='canonical']").First().Attr("href"); ok {
		doc.Canonical = strings.TrimSpace(canonical)
	}
	if lang, ok := gq.Find("html").First().Attr("lang"); ok {
		doc.Lang = strings.TrimSpace(lang)
	}

	doc.HasViewport = gq.Find("meta[name='viewport']").Length() > 0
	doc.HasOpenGraph = gq.Find("meta[property^='og:']").Length() > 0

	gq.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != "" {
			doc.HasJSONLD = true
			return false
		}
		return true
	})

	// Single pass so headings stay in document order across levels.
	gq.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		if len(tag) != 2 || tag[0] != 'h' {
			return
		}
		level := int(tag[1] - '0')
		if level < 1 || level > 6 {
			return
		}
		doc.Headings = append(doc.Headings, Heading{Level: level, Text: normalizeSpace(s.Text())})
	})

	gq.Find("img").Each(func(_ int, s *goquery.Selection) {
		doc.ImageCount++
		if alt, ok := s.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			doc.ImagesMissingAlt++
		}
	})

	base, baseErr := url.Parse(finalURL)
	gq.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		parsed, err := url.Parse(href)
		if err != nil || baseErr != nil {
			return
		}
		resolved := base.ResolveReference(parsed)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if sameRegistrableDomain(resolved.Hostname(), base.Hostname()) {
			doc.InternalLinks++
		} else {
			doc.ExternalLinks++
		}
	})

	return doc
}

// SameRegistrableDomain reports whether two URLs share a registrable domain
// (eTLD+1). Used by the canonical self-consistency rule.
func SameRegistrableDomain(rawA, rawB string) bool {
	a, errA := url.Parse(rawA)
	b, errB := url.Parse(rawB)
	if errA != nil || errB != nil {
		return false
	}
	return sameRegistrableDomain(a.Hostname(), b.Hostname())
}

func sameRegistrableDomain(hostA, hostB string) bool {
	if hostA == "" || hostB == "" {
		return false
	}
	a, errA := publicsuffix.EffectiveTLDPlusOne(hostA)
	b, errB := publicsuffix.EffectiveTLDPlusOne(hostB)
	if errA != nil || errB != nil {
		// IP literals, localhost, single-label hosts: fall back to exact match.
		return strings.EqualFold(hostA, hostB)
	}
	return strings.EqualFold(a, b)
}

// normalizeSpace collapses runs of whitespace and trims the ends so rules
// operate on canonical text.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
