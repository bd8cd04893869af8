package govdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for portal requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerCompass/1.0)"

// FetchError represents a failure retrieving or parsing a portal page.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("govdata fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("govdata fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Options configures the HTTP provider.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for portal fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// HTTPProvider scrapes a government data portal for scheme listings and
// falls back to the static tables when the portal is unreachable or returns
// nothing usable. Demand records always come from the static table since no
// public endpoint exposes them.
type HTTPProvider struct {
	baseURL  string
	opts     *Options
	client   *http.Client
	fallback *StaticProvider
}

// NewHTTPProvider returns a provider that scrapes baseURL for schemes.
func NewHTTPProvider(baseURL string, opts *Options) (*HTTPProvider, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &FetchError{URL: baseURL, Message: "invalid portal URL", Cause: err}
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTTPProvider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		opts:     opts,
		client:   &http.Client{Timeout: opts.Timeout},
		fallback: NewStaticProvider(),
	}, nil
}

// Schemes scrapes the portal's scheme listing. On any error it serves the
// static table instead so enrichment stays best effort.
func (p *HTTPProvider) Schemes(ctx context.Context, profile *types.Profile) ([]types.Scheme, error) {
	doc, err := p.fetch(ctx, p.baseURL+"/schemes")
	if err != nil {
		return p.fallback.Schemes(ctx, profile)
	}

	schemes := parseSchemes(doc)
	if len(schemes) == 0 {
		return p.fallback.Schemes(ctx, profile)
	}

	if profile == nil {
		return schemes, nil
	}
	var out []types.Scheme
	for _, scheme := range schemes {
		if schemeMatches(&scheme, profile) {
			out = append(out, scheme)
		}
	}
	return out, nil
}

// MarketData serves the static snapshot. The portal publishes market data
// as PDF reports only.
func (p *HTTPProvider) MarketData(ctx context.Context) ([]types.MarketData, error) {
	return p.fallback.MarketData(ctx)
}

// CareerDemand serves the static demand table.
func (p *HTTPProvider) CareerDemand(ctx context.Context, career string) (*types.DemandData, error) {
	return p.fallback.CareerDemand(ctx, career)
}

func (p *HTTPProvider) fetch(ctx context.Context, urlStr string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", p.opts.UserAgent)
	for key, value := range p.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// parseSchemes extracts scheme cards from a portal listing page. Each card
// is a .scheme element carrying data-id and data-category attributes with
// the name, description, amount, and deadline in nested elements.
func parseSchemes(doc *goquery.Document) []types.Scheme {
	var out []types.Scheme
	doc.Find(".scheme").Each(func(_ int, sel *goquery.Selection) {
		id, ok := sel.Attr("data-id")
		if !ok || id == "" {
			return
		}
		scheme := types.Scheme{
			ID:          id,
			Name:        strings.TrimSpace(sel.Find(".scheme-name").Text()),
			Description: strings.TrimSpace(sel.Find(".scheme-description").Text()),
			Amount:      strings.TrimSpace(sel.Find(".scheme-amount").Text()),
			Deadline:    strings.TrimSpace(sel.Find(".scheme-deadline").Text()),
		}
		if category, ok := sel.Attr("data-category"); ok {
			scheme.Category = category
		}
		if href, ok := sel.Find("a.scheme-apply").Attr("href"); ok {
			scheme.ApplicationURL = href
		}
		sel.Find(".scheme-eligibility li").Each(func(_ int, item *goquery.Selection) {
			scheme.Eligibility = append(scheme.Eligibility, strings.TrimSpace(item.Text()))
		})
		if scheme.Name == "" {
			return
		}
		out = append(out, scheme)
	})
	return out
}
