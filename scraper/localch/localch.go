package localch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"listing-view/config"
	"listing-view/models"
	"listing-view/utils"
)

var errNoEntryState = errors.New("page carries no entry state")

// entryStateJS returns the entry record embedded in a detail page as a JSON
// string, or "" when the page has none.
const entryStateJS = `
	(function() {
		var next = document.querySelector('script#__NEXT_DATA__');
		if (next) {
			try {
				var data = JSON.parse(next.textContent);
				var props = data.props && data.props.pageProps;
				if (props && props.entry) return JSON.stringify(props.entry);
			} catch (e) {}
		}

		if (window.__ENTRY__) return JSON.stringify(window.__ENTRY__);

		var tagged = document.querySelector('script[type="application/json"][data-entry]');
		if (tagged) return tagged.textContent;

		return '';
	})()
`

// Fetcher loads listing records from entry detail pages with a headless
// browser.
type Fetcher struct {
	cfg     *config.Config
	logger  *utils.Logger
	pool    *utils.WorkerPool
	visited *utils.KeySet
	retry   *utils.RetryConfig
}

// New creates a ready-to-use Fetcher.
func New(cfg *config.Config, logger *utils.Logger) *Fetcher {
	return &Fetcher{
		cfg:     cfg,
		logger:  logger,
		pool:    utils.NewWorkerPool(cfg.MaxConcurrency, time.Duration(cfg.RateLimitMs)*time.Millisecond),
		visited: utils.NewKeySet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Fetch visits every URL once and returns the records found, in URL order.
// Pages that fail after retries are logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, urls []string) ([]*models.ListingRecord, error) {
	f.logger.Info("[localch] Fetching %d entry pages", len(urls))

	chromeBin := f.cfg.ChromeBin
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	f.logger.Info("[localch] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("localch: start browser: %w", err)
	}

	var mu sync.Mutex
	found := make([]*models.ListingRecord, len(urls))

	for i, pageURL := range urls {
		if !f.visited.Add(pageURL) {
			f.logger.Debug("[localch] Skipping duplicate: %s", pageURL)
			continue
		}

		i, pageURL := i, pageURL
		f.pool.Submit(func() {
			rec, err := f.fetchEntry(browserCtx, pageURL)
			if err != nil {
				f.logger.Warn("[localch] Entry page failed for %s: %v", pageURL, err)
				return
			}

			mu.Lock()
			found[i] = rec
			mu.Unlock()
			f.logger.Debug("[localch] Fetched %s (%s)", rec.ID, rec.Title)
		})
	}
	f.pool.Wait()

	records := make([]*models.ListingRecord, 0, len(found))
	for _, rec := range found {
		if rec != nil {
			records = append(records, rec)
		}
	}

	f.logger.Info("[localch] Fetch complete — %d of %d distinct pages yielded an entry", len(records), f.visited.Size())
	if len(records) == 0 && len(urls) > 0 {
		return nil, fmt.Errorf("localch: no entries found on %d pages", len(urls))
	}
	return records, nil
}

// fetchEntry opens one detail page in a new tab and extracts its record.
func (f *Fetcher) fetchEntry(browserCtx context.Context, pageURL string) (*models.ListingRecord, error) {
	var rec *models.ListingRecord

	err := f.retry.Do(browserCtx, "entry-page", func(ctx context.Context) error {
		tabCtx, cancel := chromedp.NewContext(ctx)
		defer cancel()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 60*time.Second)
		defer cancelTimeout()

		var state string
		if err := chromedp.Run(tabCtx,
			chromedp.Navigate(pageURL),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.Sleep(2*time.Second),
			chromedp.Evaluate(entryStateJS, &state),
		); err != nil {
			return fmt.Errorf("chromedp evaluate: %w", err)
		}

		decoded, err := decodeEntryState(state)
		if err != nil {
			return err
		}
		rec = decoded
		return nil
	})

	return rec, err
}

// decodeEntryState parses the JSON string returned by entryStateJS.
func decodeEntryState(state string) (*models.ListingRecord, error) {
	if state == "" {
		return nil, errNoEntryState
	}

	var rec models.ListingRecord
	if err := json.Unmarshal([]byte(state), &rec); err != nil {
		return nil, fmt.Errorf("decode entry state: %w", err)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("entry state without id: %w", errNoEntryState)
	}
	return &rec, nil
}

// findChromeBinary locates Chrome/Chromium binary.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
