// Package discover crawls a seed page, fetches the external JavaScript
// it references, beautifies each fetched body with pkg/jsbeautify and
// scans the beautified text for embedded absolute URLs — the same
// beautify-then-regex pipeline module/crawler/crawler.go's fetchJS runs
// against a vendored beautifier, generalized to this repository's own.
package discover

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dsnet/compress/brotli"
	"github.com/gocolly/colly/v2"
	"github.com/icza/abcsort"
	"gopkg.in/resty.v1"
	"mvdan.cc/xurls/v2"

	"github.com/muraenateam/jsbeautify/internal/cache"
	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/log"
	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

// Discoverer crawls a target and accumulates every external host it
// finds, either linked directly on the page or embedded inside a
// beautified script body.
type Discoverer struct {
	Depth        int
	MaxRequests  int
	UserAgent    string
	BeautifyOpts jsbeautify.RawOptions

	Domains []string

	cache *cache.Cache
	cfg   config.Configuration

	mu     sync.Mutex
	seenJS map[string]bool
}

// New builds a Discoverer from the crawler settings in cfg. When
// cfg.Cache.Enabled is set it memoizes each fetched script's
// beautified body in Redis, since the same script is often linked
// from many pages of the same crawl.
func New(cfg config.Configuration) *Discoverer {
	d := &Discoverer{
		Depth:        cfg.Crawler.Depth,
		MaxRequests:  100,
		UserAgent:    cfg.Crawler.UserAgent,
		BeautifyOpts: cfg.BeautifyOptions(),
		cfg:          cfg,
		seenJS:       map[string]bool{},
	}
	if cfg.Cache.Enabled {
		d.cache = cache.New(cfg.Cache.RedisAddress)
	}
	return d
}

// beautify beautifies body, consulting the Redis cache first when one
// is configured, and logging (never failing) on a cache error.
func (d *Discoverer) beautify(body string) string {
	if d.cache == nil {
		return jsbeautify.BeautifyString(body, d.BeautifyOpts)
	}

	result, err := d.cache.Beautify(body, d.cfg)
	if err != nil {
		log.Debug("cache: %s", err)
	}
	return result
}

// Crawl visits seedURL and every page it links to up to Depth levels
// deep, collecting external hosts along the way. It returns once the
// crawl completes or ctx is canceled.
func (d *Discoverer) Crawl(ctx context.Context, seedURL string) error {
	tr := &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	client := &http.Client{Transport: tr}

	c := colly.NewCollector(
		colly.UserAgent(d.UserAgent),
		colly.MaxDepth(d.Depth),
		colly.CheckHead(),
	)
	c.SetClient(client)

	var waitGroup sync.WaitGroup

	numVisited := 0
	c.OnRequest(func(r *colly.Request) {
		numVisited++
		if ctx.Err() != nil || numVisited > d.MaxRequests {
			r.Abort()
			return
		}
	})

	c.OnHTML("script[src]", func(e *colly.HTMLElement) {
		src := e.Attr("src")
		if d.appendExternalDomain(src) {
			waitGroup.Add(1)
			go d.fetchJS(&waitGroup, src)
		}
	})

	c.OnHTML("[src]", func(e *colly.HTMLElement) {
		d.appendExternalDomain(e.Attr("src"))
	})

	c.OnHTML("link[href]", func(e *colly.HTMLElement) {
		d.appendExternalDomain(e.Attr("href"))
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Attr("href")
		d.appendExternalDomain(link)
		_ = e.Request.Visit(link)
	})

	if err := c.Limit(&colly.LimitRule{DomainGlob: "*", RandomDelay: 500 * time.Millisecond}); err != nil {
		log.Warning("[discover] colly limit: %s", err)
	}

	log.Info("starting crawl of %s (depth=%d, maxRequests=%d)", seedURL, d.Depth, d.MaxRequests)

	if err := c.Visit(seedURL); err != nil {
		return err
	}

	waitGroup.Wait()
	return nil
}

// fetchJS downloads a script, decoding a brotli-encoded body if the
// server sent one (dsnet/compress/brotli has no Writer, so brotli only
// ever shows up on this decode side), beautifies it, and mines the
// beautified text for embedded absolute URLs.
func (d *Discoverer) fetchJS(waitGroup *sync.WaitGroup, src string) {
	defer waitGroup.Done()

	resolved, key := resolveScriptURL(src)

	d.mu.Lock()
	already := d.seenJS[key]
	if !already {
		d.seenJS[key] = true
	}
	d.mu.Unlock()
	if already {
		return
	}

	log.Debug("fetching JS: %s", resolved)
	resp, err := resty.R().Get(resolved)
	if err != nil {
		log.Error("fetching JS at %s: %s", resolved, err)
		return
	}

	body, err := decodeBody(resp)
	if err != nil {
		log.Error("decoding JS body at %s: %s", resolved, err)
		return
	}

	beautified := d.beautify(body)

	found := xurls.Strict().FindAllString(beautified, -1)
	if len(found) > 0 && len(found) < 100 {
		for _, u := range found {
			d.appendExternalDomain(u)
		}
		log.Info("%d domain(s) found in JS at %s", len(found), resolved)
	}
}

func decodeBody(resp *resty.Response) (string, error) {
	raw := resp.Body()
	if resp.RawResponse == nil || resp.RawResponse.Header.Get("Content-Encoding") != "br" {
		return string(raw), nil
	}

	r, err := brotli.NewReader(strings.NewReader(string(raw)), &brotli.ReaderConfig{})
	if err != nil {
		return "", err
	}
	defer r.Close()

	var out strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			out.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	return out.String(), nil
}

func resolveScriptURL(src string) (resolved, key string) {
	switch {
	case strings.HasPrefix(src, "//"):
		resolved = "https:" + src
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		resolved = src
	default:
		resolved = "https://" + strings.TrimPrefix(src, "/")
	}

	u, err := url.Parse(resolved)
	if err != nil {
		return resolved, src
	}
	return resolved, u.Host + u.Path
}

// appendExternalDomain records the host of res if it looks like an
// absolute external reference, mirroring
// module/crawler/crawler.go's appendExternalDomain.
func (d *Discoverer) appendExternalDomain(res string) bool {
	if !strings.HasPrefix(res, "//") && !strings.HasPrefix(res, "https://") && !strings.HasPrefix(res, "http://") {
		return false
	}

	u, err := url.Parse(res)
	if err != nil {
		log.Error("url.Parse error, skipping %s: %s", res, err)
		return false
	}

	if len(u.Host) > 2 && (strings.Contains(u.Host, ".") || strings.Contains(u.Host, ":")) {
		d.mu.Lock()
		d.Domains = append(d.Domains, u.Host)
		d.mu.Unlock()
	}

	return true
}

func reverseStrings(ss []string) []string {
	last := len(ss) - 1
	for i := 0; i < len(ss)/2; i++ {
		ss[i], ss[last-i] = ss[last-i], ss[i]
	}
	return ss
}

// SimplifyDomains groups 3rd/4th-level subdomains into a *.domain.tld
// wildcard form, dedups and naturally sorts the result, mirroring
// module/crawler/crawler.go's SimplifyDomains.
func (d *Discoverer) SimplifyDomains() {
	var domains []string
	for _, raw := range d.Domains {
		host := strings.TrimSpace(raw)
		parts := reverseStrings(strings.Split(host, "."))

		switch len(parts) {
		case 3:
			host = fmt.Sprintf("*.%s.%s", parts[1], parts[0])
		case 4:
			host = fmt.Sprintf("*.%s.%s.%s", parts[2], parts[1], parts[0])
		}

		domains = append(domains, host)
	}

	domains = dedup(domains)

	sorter := abcsort.New("*")
	sorter.Strings(domains)

	d.Domains = domains
}

func dedup(slice []string) []string {
	seen := make(map[string]bool, len(slice))
	var out []string
	for _, s := range slice {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
