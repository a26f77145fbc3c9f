package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// screenshotTimeout bounds the whole headless-Chrome round trip,
// including browser startup.
const screenshotTimeout = 60 * time.Second

// screenshotSVG renders an SVG document in headless Chrome and
// screenshots the svg element, returning PNG bytes. The document is
// passed as a base64 data URI so no temp file is needed.
func screenshotSVG(svgDoc string, width, height int) ([]byte, error) {
	dataURI := "data:image/svg+xml;base64," +
		base64.StdEncoding.EncodeToString([]byte(svgDoc))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx, cancelTimeout := context.WithTimeout(ctx, screenshotTimeout)
	defer cancelTimeout()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to screenshot SVG: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("screenshot produced no data")
	}
	return buf, nil
}
