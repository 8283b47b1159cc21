package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/osmtools/speedlimits/dom"
)

// DefaultURL is the collaboratively edited reference page the tables are
// scraped from.
const DefaultURL = "https://wiki.openstreetmap.org/wiki/Default_speed_limits"

// Tables holds the classified table elements found in one page.
type Tables struct {
	// RoadTypes is the road-type definition table, nil when the page does
	// not carry one.
	RoadTypes dom.Element

	// Speeds are the per-country speed tables in document order.
	Speeds []dom.Element
}

// Client retrieves and classifies the source page.
type Client struct {
	http *retryablehttp.Client
	url  string
}

// NewClient creates a client for the default page with retry defaults
// suited to a wiki that occasionally rate-limits.
func NewClient() *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.Logger = nil
	return &Client{http: c, url: DefaultURL}
}

// WithURL points the client at a different page, typically a fixture or a
// mirror.
func (c *Client) WithURL(url string) *Client {
	c.url = url
	return c
}

// Fetch retrieves the page and classifies its tables.
func (c *Client) Fetch(ctx context.Context) (*Tables, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", c.url, resp.Status)
	}

	return Classify(resp.Body)
}

// Classify parses page HTML and sorts its wikitable elements into the two
// known shapes by their first header cell. Tables matching neither shape
// are ignored.
func Classify(r io.Reader) (*Tables, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	tables := &Tables{}
	doc.Find("table.wikitable").Each(func(_ int, sel *goquery.Selection) {
		first := strings.TrimSpace(sel.Find("tr").First().Find("th").First().Text())
		node := sel.Get(0)

		switch {
		case strings.EqualFold(first, "Road type"):
			if tables.RoadTypes == nil {
				tables.RoadTypes = dom.FromHTML(node)
			}
		case strings.EqualFold(first, "Country"):
			tables.Speeds = append(tables.Speeds, dom.FromHTML(node))
		}
	})

	if tables.RoadTypes == nil && len(tables.Speeds) == 0 {
		return nil, fmt.Errorf("no recognizable tables in page")
	}
	return tables, nil
}
