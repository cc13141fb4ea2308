// Package intel gathers best-effort competitor intelligence by scraping the
// competitor's website. Every failure is soft: callers always get a usable
// CompetitorIntel value, with Source "none" when nothing could be learned.
package intel

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mbaxter/adforge/internal/types"
)

const (
	maxListItems     = 10
	descriptionLimit = 500
)

// Collector scrapes competitor websites.
type Collector struct {
	client *http.Client
}

// NewCollector creates a collector with the default HTTP timeout.
func NewCollector() *Collector {
	return &Collector{client: &http.Client{Timeout: DefaultTimeout}}
}

// NewCollectorWithClient creates a collector using client, for tests and
// custom transports.
func NewCollectorWithClient(client *http.Client) *Collector {
	return &Collector{client: client}
}

// Gather collects intelligence for the competitor. When websiteURL is empty
// it probes candidate domains derived from the business name, fetching them
// concurrently and keeping the first page that yields a description. The
// returned intel always carries the business name; Source is "none" when no
// page produced a description.
func (c *Collector) Gather(ctx context.Context, businessName, websiteURL string) types.CompetitorIntel {
	intel := types.CompetitorIntel{
		BusinessName: businessName,
		Website:      websiteURL,
		Source:       "none",
	}

	candidates := []string{}
	if websiteURL != "" {
		candidates = append(candidates, normalizeURL(websiteURL))
	} else {
		candidates = candidateURLs(businessName)
	}
	if len(candidates) == 0 {
		return intel
	}

	page, pageURL, ok := c.fetchFirst(ctx, candidates)
	if !ok {
		return intel
	}

	scraped, err := parsePage(page)
	if err != nil || scraped.Description == "" {
		return intel
	}

	intel.Website = pageURL
	intel.Description = scraped.Description
	intel.Services = scraped.Services
	intel.KeyFeatures = scraped.KeyFeatures
	intel.Source = "website"
	return intel
}

// fetchFirst fetches the candidates concurrently and returns the first
// successful body in candidate order. Individual failures are logged and
// swallowed.
func (c *Collector) fetchFirst(ctx context.Context, candidates []string) (string, string, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, DefaultTimeout+5*time.Second)
	defer cancel()

	bodies := make([]string, len(candidates))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(fetchCtx)
	for i, candidate := range candidates {
		g.Go(func() error {
			body, err := fetchHTML(gctx, c.client, candidate)
			if err != nil {
				log.Printf("intel: fetch failed for %s: %v", candidate, err)
				return nil
			}
			mu.Lock()
			bodies[i] = body
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for i, body := range bodies {
		if body != "" {
			return body, candidates[i], true
		}
	}
	return "", "", false
}

// candidateURLs derives likely domains from the business name.
func candidateURLs(businessName string) []string {
	slug := slugify(businessName)
	if slug == "" {
		return nil
	}
	return []string{
		"https://www." + slug + ".com",
		"https://" + slug + ".com",
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

type scrapedPage struct {
	Description string
	Services    []string
	KeyFeatures []string
}

// parsePage extracts a description plus service and feature lists from an
// HTML document. The description prefers the meta description, then the
// first paragraphs of the main content, then the page title.
func parsePage(html string) (scrapedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scrapedPage{}, err
	}

	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	description = strings.TrimSpace(description)

	if description == "" {
		description = mainContentText(doc)
	}
	if description == "" {
		description = strings.TrimSpace(doc.Find("title").First().Text())
	}

	services, features := extractListSections(doc)

	return scrapedPage{
		Description: description,
		Services:    services,
		KeyFeatures: features,
	}, nil
}

// mainContentText joins the first paragraphs of the page's main content.
func mainContentText(doc *goquery.Document) string {
	main := doc.Find("main").First()
	if main.Length() == 0 {
		main = doc.Find("article").First()
	}
	if main.Length() == 0 {
		return ""
	}

	var parts []string
	main.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
		return i < 4
	})
	return truncate(strings.Join(parts, " "), descriptionLimit)
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// extractListSections pulls short text items out of sections whose class
// names suggest services or features. Service-classed sections feed the
// service list, everything else the feature list.
func extractListSections(doc *goquery.Document) (services, features []string) {
	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		class, _ := section.Attr("class")
		lower := strings.ToLower(class)
		if !strings.Contains(lower, "service") && !strings.Contains(lower, "feature") &&
			!strings.Contains(lower, "offer") && !strings.Contains(lower, "product") {
			return
		}
		isService := strings.Contains(lower, "service")

		section.Find("li, p").EachWithBreak(func(i int, item *goquery.Selection) bool {
			text := strings.TrimSpace(item.Text())
			if len(text) > 10 && len(text) < 200 {
				if isService {
					services = appendUnique(services, text, maxListItems)
				} else {
					features = appendUnique(features, text, maxListItems)
				}
			}
			return i < maxListItems-1
		})
	})
	return services, features
}

func appendUnique(list []string, v string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
