// Package pagetest provides a scripted in-memory page.Page for tests.
package pagetest

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"
)

// ErrScripted is the default error returned by failing fake steps
var ErrScripted = errors.New("scripted failure")

// FakePage records calls and replays scripted responses
type FakePage struct {
	mu sync.Mutex

	// Output returns the output panel text for the current input
	Output func(input string) string

	NavigateErr   error
	LoadErr       error
	FieldsErr     error
	ClearErr      error
	FillErr       error
	OutputErr     error
	ScreenshotErr error

	// BlockFill makes FillInput wait for ctx to be done
	BlockFill bool

	input       string
	Calls       []string
	Screenshots []string
}

// New returns a FakePage whose output panel echoes output for any input
func New(output string) *FakePage {
	return &FakePage{Output: func(string) string { return output }}
}

func (f *FakePage) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

// Input returns the current content of the input textbox
func (f *FakePage) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

func (f *FakePage) Navigate(ctx context.Context, url string) error {
	f.record("navigate " + url)
	return f.NavigateErr
}

func (f *FakePage) WaitUntilLoaded(ctx context.Context) error {
	f.record("loaded")
	return f.LoadErr
}

func (f *FakePage) WaitForFields(ctx context.Context, timeout time.Duration) error {
	f.record("fields")
	return f.FieldsErr
}

func (f *FakePage) ClearInput(ctx context.Context) error {
	f.record("clear")
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.mu.Lock()
	f.input = ""
	f.mu.Unlock()
	return nil
}

// FillInput replaces the input content, like Browser.FillInput
func (f *FakePage) FillInput(ctx context.Context, text string) error {
	f.record("fill")
	if f.BlockFill {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.FillErr != nil {
		return f.FillErr
	}
	f.mu.Lock()
	f.input = text
	f.mu.Unlock()
	return nil
}

func (f *FakePage) OutputText(ctx context.Context, timeout time.Duration) (string, error) {
	f.record("output")
	if f.OutputErr != nil {
		return "", f.OutputErr
	}
	if f.Output == nil {
		return "", nil
	}
	return f.Output(f.Input()), nil
}

func (f *FakePage) Screenshot(ctx context.Context, path string) error {
	f.record("screenshot")
	if f.ScreenshotErr != nil {
		return f.ScreenshotErr
	}
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		return err
	}
	f.mu.Lock()
	f.Screenshots = append(f.Screenshots, path)
	f.mu.Unlock()
	return nil
}
