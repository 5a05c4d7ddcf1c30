package extract

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// DefaultPageTimeout bounds the headless navigation. Job boards are slow;
// anything past this is treated as a dead page.
const DefaultPageTimeout = 60 * time.Second

// MinPageTextLength is the minimum extracted text length for a scraped
// page to count as a real job posting.
const MinPageTextLength = 50

// noiseSelector lists the elements removed before text serialization.
const noiseSelector = "script, style, nav, footer, header, iframe, noscript"

// Page renders a URL in a headless browser and returns the visible body
// text with noise elements stripped and whitespace collapsed. The browser
// context is torn down on every exit path, including caller cancellation.
func Page(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if timeout <= 0 {
		timeout = DefaultPageTimeout
	}
	if verbose {
		log.Printf("[BROWSER] rendering %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	// Wait for the DOM to be ready, not network idle: job boards keep
	// long-polling connections open and full idle never arrives.
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", classifyRenderError(ctx, url, err)
	}

	text, err := stripPageText(html)
	if err != nil {
		return "", err
	}
	if verbose {
		log.Printf("[BROWSER] extracted %d characters from %s", len(text), url)
	}

	if len(text) < MinPageTextLength {
		return "", &Error{
			Reason:  ReasonTooShort,
			Message: "job page contains no extractable text",
		}
	}
	return text, nil
}

// classifyRenderError separates a blown render budget from a broken page.
// The deadline check is gated on the caller's context still being live:
// when the caller cancelled or its own deadline fired, the error is theirs
// and stays a plain render failure rather than a timeout of ours.
func classifyRenderError(ctx context.Context, url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return &Error{Reason: ReasonRenderTimeout, Message: url, Cause: err}
	}
	return &Error{Reason: ReasonRenderFailed, Message: url, Cause: err}
}

// stripPageText removes non-content elements and collapses whitespace runs
// to single spaces.
func stripPageText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &Error{Reason: ReasonUndecodable, Message: "failed to parse rendered HTML", Cause: err}
	}
	doc.Find(noiseSelector).Remove()
	text := doc.Find("body").Text()
	return strings.TrimSpace(strings.Join(strings.Fields(text), " ")), nil
}
