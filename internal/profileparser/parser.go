// Package profileparser scrapes public profile pages to keep influencer
// follower counts fresh. Only Telegram's public preview pages are supported;
// other platforms have no scrape-friendly surface.
package profileparser

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

type ProfileStats struct {
	Handle        string    `json:"handle"`
	Followers     *int      `json:"followers,omitempty"`
	VerifiedBadge bool      `json:"verified_badge"`
	Title         string    `json:"title,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
}

type Parser struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewParser(timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	return &Parser{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

// FetchProfile loads the public preview page for the handle and extracts the
// follower count.
func (p *Parser) FetchProfile(ctx context.Context, handle string) (*ProfileStats, error) {
	url := fmt.Sprintf("https://t.me/s/%s", handle)

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	stats := &ProfileStats{
		Handle:    handle,
		FetchedAt: time.Now(),
	}

	stats.Title = strings.TrimSpace(doc.Find(".tgme_channel_info_header_title").First().Text())
	stats.VerifiedBadge = doc.Find(".tgme_channel_info_header_title .verified-icon").Length() > 0

	doc.Find(".tgme_channel_info_counter .counter_value").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		label := strings.ToLower(strings.TrimSpace(s.Parent().Find(".counter_type").Text()))
		if strings.Contains(label, "subscriber") || strings.Contains(label, "member") {
			if n := parseCount(text); n > 0 {
				stats.Followers = &n
			}
		}
	})

	// Fallback: header counter used on pages without the info block
	if stats.Followers == nil {
		doc.Find(".tgme_channel_info_header_counter").Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			lower := strings.ToLower(text)
			if strings.Contains(lower, "subscriber") || strings.Contains(lower, "member") {
				if n := parseCount(text); n > 0 {
					stats.Followers = &n
				}
			}
		})
	}

	return stats, nil
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// parseCount normalizes abbreviated counts like "1.2K" or "3.4M subscribers".
func parseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}
