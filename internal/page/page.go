// Package page drives the web page under test.
package page

import (
	"context"
	"time"
)

// Page is the browser surface a scenario interacts with
type Page interface {
	// Navigate opens url and waits for the load event
	Navigate(ctx context.Context, url string) error
	// WaitUntilLoaded waits for the DOM to be ready
	WaitUntilLoaded(ctx context.Context) error
	// WaitForFields waits until both the input and the output field are visible
	WaitForFields(ctx context.Context, timeout time.Duration) error
	// ClearInput empties the input textbox
	ClearInput(ctx context.Context) error
	// FillInput types text into the input textbox
	FillInput(ctx context.Context, text string) error
	// OutputText waits for the output panel and returns its text content
	OutputText(ctx context.Context, timeout time.Duration) (string, error)
	// Screenshot writes a full-page PNG to path
	Screenshot(ctx context.Context, path string) error
}
