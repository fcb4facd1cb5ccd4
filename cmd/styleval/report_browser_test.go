//go:build e2e

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	"styleval/internal/report"
)

// Smoke check that the HTML report renders as a real page in a browser.
func TestHTMLReport_RendersInBrowser(t *testing.T) {
	dir := t.TempDir()
	execute(t, "evaluate", "--demo", "demo-style", "--out", dir, "--renderer", "stub")

	htmlPath := filepath.Join(dir, "report.html")
	execute(t, "report", filepath.Join(dir, report.ReportName), "--format", "html", "-o", htmlPath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var title string
	var tableText string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("table", chromedp.ByQuery),
		chromedp.Title(&title),
		chromedp.Text("table", &tableText, chromedp.ByQuery),
	)
	if err != nil {
		t.Fatalf("chromedp: %v", err)
	}

	if !strings.Contains(title, "styleval report") {
		t.Errorf("page title = %q, want styleval report", title)
	}
	for _, col := range report.CountColumns {
		if !strings.Contains(tableText, col) {
			t.Errorf("rendered table misses column %q:\n%s", col, tableText)
		}
	}
}
