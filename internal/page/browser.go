package page

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"sheetrun/internal/config"
)

// Browser is a Page backed by a Chrome tab driven over the DevTools protocol
type Browser struct {
	log            logrus.FieldLogger
	ctx            context.Context
	cancelTab      context.CancelFunc
	cancelAlloc    context.CancelFunc
	inputSelector  string
	outputSelector string
}

// NewBrowser starts Chrome and opens the tab every case runs in
func NewBrowser(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(log.WithField("component", "chromedp").Debugf),
	)

	// first Run launches the browser
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &Browser{
		log:            log.WithField("component", "browser"),
		ctx:            tabCtx,
		cancelTab:      cancelTab,
		cancelAlloc:    cancelAlloc,
		inputSelector:  InputXPath(cfg.InputName),
		outputSelector: cfg.OutputSelector,
	}, nil
}

// InputXPath locates a textbox by its accessible name (placeholder or aria-label)
func InputXPath(name string) string {
	return fmt.Sprintf(`//*[(self::textarea or self::input) and (@aria-label="%[1]s" or @placeholder="%[1]s")]`, name)
}

// Close shuts the tab and the browser down
func (b *Browser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.cancelTab()
	b.cancelAlloc()
	return err
}

// run executes actions in the tab, aborting when ctx is done
func (b *Browser) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(b.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// runWithTimeout is run bounded by timeout
func (b *Browser) runWithTimeout(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return b.run(ctx, actions...)
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	b.log.WithField("url", url).Debug("Navigating")
	if err := b.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (b *Browser) WaitUntilLoaded(ctx context.Context) error {
	if err := b.run(ctx, chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for document: %w", err)
	}
	return nil
}

func (b *Browser) WaitForFields(ctx context.Context, timeout time.Duration) error {
	if err := b.runWithTimeout(ctx, timeout, chromedp.WaitVisible(b.inputSelector, chromedp.BySearch)); err != nil {
		return fmt.Errorf("wait for input field: %w", err)
	}
	if err := b.runWithTimeout(ctx, timeout, chromedp.WaitVisible(b.outputSelector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for output field: %w", err)
	}
	return nil
}

func (b *Browser) ClearInput(ctx context.Context) error {
	return b.run(ctx, chromedp.Clear(b.inputSelector, chromedp.BySearch))
}

// FillInput replaces the input's content with text, typing it so the page sees key events
func (b *Browser) FillInput(ctx context.Context, text string) error {
	if err := b.run(ctx, fillActions(b.inputSelector, text)...); err != nil {
		return fmt.Errorf("fill input: %w", err)
	}
	return nil
}

// fillActions empties the field before typing, SendKeys alone appends
func fillActions(sel, text string) []chromedp.Action {
	return []chromedp.Action{
		chromedp.SetValue(sel, "", chromedp.BySearch),
		chromedp.Focus(sel, chromedp.BySearch),
		chromedp.SendKeys(sel, text, chromedp.BySearch),
	}
}

func (b *Browser) OutputText(ctx context.Context, timeout time.Duration) (string, error) {
	var text string
	if err := b.runWithTimeout(ctx, timeout,
		chromedp.WaitVisible(b.outputSelector, chromedp.ByQuery),
		chromedp.TextContent(b.outputSelector, &text, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("read output: %w", err)
	}
	return text, nil
}

func (b *Browser) Screenshot(ctx context.Context, path string) error {
	var buf []byte
	// quality 100 yields PNG
	if err := b.run(ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}
