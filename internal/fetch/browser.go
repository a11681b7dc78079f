package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// WithBrowser renders urlStr in headless Chrome and returns the resulting HTML.
// Useful when tables are built client-side. Requires Chrome/Chromium on the host.
func WithBrowser(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	if err := ValidateURL(urlStr); err != nil {
		return "", err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	return html, nil
}
