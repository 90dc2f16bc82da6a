// Package collyfetcher implements the pipeline's Fetcher on the Colly
// collector: one politely-delayed synchronous GET at a time.
package collyfetcher

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/Abderrahmane-Najib/KG-project/internal/crawler"
	"github.com/Abderrahmane-Najib/KG-project/internal/metrics"
	"github.com/Abderrahmane-Najib/KG-project/internal/snapshot"
)

// Config controls collector and politeness behavior.
type Config struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	// DelayMin/DelayMax bound the randomized politeness pause taken
	// before every request.
	DelayMin time.Duration
	DelayMax time.Duration
	// Cooldown is the fixed sleep taken after an HTTP 429 before the
	// same request is retried.
	Cooldown time.Duration
}

// Fetcher issues single synchronous GETs with jittered politeness delays
// and an unbounded iterative retry loop on 429.
type Fetcher struct {
	cfg            Config
	baseCollector  *colly.Collector
	pauser         crawler.Pauser
	snapshots      snapshot.Store
	snapshotPrefix string
	logger         *zap.Logger
}

// New builds a Fetcher. snapshots may be nil to disable page archiving.
func New(cfg Config, pauser crawler.Pauser, snapshots snapshot.Store, snapshotPrefix string, logger *zap.Logger) *Fetcher {
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.WithTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 15 * time.Second,
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
	})
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	c.SetRequestTimeout(timeout)

	return &Fetcher{
		cfg:            cfg,
		baseCollector:  c,
		pauser:         pauser,
		snapshots:      snapshots,
		snapshotPrefix: snapshotPrefix,
		logger:         logger,
	}
}

// Fetch retrieves one path under the configured origin and returns the
// parsed document. 429 responses trigger a fixed cooldown and an
// in-place retry; the loop is iterative so sustained rate limiting never
// grows the call stack. Any other failure is returned to the caller,
// which treats it as "skip this unit of work".
func (f *Fetcher) Fetch(ctx context.Context, path string) (*goquery.Document, error) {
	target := path
	if !isAbsolute(path) {
		target = f.cfg.BaseURL + path
	}
	for {
		f.pauser.Pause(ctx, f.politenessDelay())
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		status, body, err := f.get(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", target, err)
		}
		metrics.PageFetched(status)
		if status == http.StatusTooManyRequests {
			f.logger.Warn("rate limited, cooling down",
				zap.String("url", target),
				zap.Duration("cooldown", f.cfg.Cooldown),
			)
			metrics.RateLimitCooldown()
			f.pauser.Pause(ctx, f.cfg.Cooldown)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			continue
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", target, status)
		}
		f.archive(ctx, target, body)
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", target, err)
		}
		return doc, nil
	}
}

func (f *Fetcher) get(ctx context.Context, url string) (int, []byte, error) {
	collector := f.baseCollector.Clone()

	var (
		status   int
		body     []byte
		fetchErr error
	)
	collector.OnRequest(func(r *colly.Request) {
		if f.cfg.AcceptLanguage != "" {
			r.Headers.Set("Accept-Language", f.cfg.AcceptLanguage)
		}
	})
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = append([]byte(nil), r.Body...)
	})
	collector.OnError(func(r *colly.Response, err error) {
		// Non-2xx responses land here with the status code set; only
		// transport-level failures leave it at zero.
		if r != nil && r.StatusCode != 0 {
			status = r.StatusCode
			body = append([]byte(nil), r.Body...)
			return
		}
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()
	select {
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	case err := <-done:
		if status != 0 {
			return status, body, nil
		}
		if fetchErr != nil {
			return 0, nil, fetchErr
		}
		if err != nil {
			return 0, nil, err
		}
		return 0, nil, errors.New("no response received")
	}
}

// archive best-effort saves the raw page; failures are logged and never
// interrupt the crawl.
func (f *Fetcher) archive(ctx context.Context, url string, body []byte) {
	if f.snapshots == nil {
		return
	}
	path := f.snapshotPrefix + "/" + safeName(url) + ".html"
	uri, err := f.snapshots.Put(ctx, path, "text/html; charset=utf-8", body)
	if err != nil {
		f.logger.Warn("snapshot save failed", zap.String("url", url), zap.Error(err))
		return
	}
	f.logger.Debug("snapshot saved", zap.String("uri", uri))
}

func (f *Fetcher) politenessDelay() time.Duration {
	if f.cfg.DelayMax <= f.cfg.DelayMin {
		return f.cfg.DelayMin
	}
	return f.cfg.DelayMin + randomJitter(f.cfg.DelayMax-f.cfg.DelayMin)
}

func randomJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return limit / 2
	}
	return time.Duration(n.Int64())
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safeName(url string) string {
	return unsafeChars.ReplaceAllString(url, "_")
}

func isAbsolute(path string) bool {
	return len(path) >= 4 && path[:4] == "http"
}
