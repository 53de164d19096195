package page

import (
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputXPath(t *testing.T) {
	xpath := InputXPath("Input Your Singlish Text Here.")

	assert.Equal(t,
		`//*[(self::textarea or self::input) and (@aria-label="Input Your Singlish Text Here." or @placeholder="Input Your Singlish Text Here.")]`,
		xpath)
}

func TestBrowser_ImplementsPage(t *testing.T) {
	var _ Page = (*Browser)(nil)
}

func TestFillActions_EmptyFieldBeforeTyping(t *testing.T) {
	actions := fillActions(InputXPath("Input"), "mama")

	require.Len(t, actions, 3)
	for _, a := range actions {
		assert.IsType(t, &chromedp.Selector{}, a)
	}
}
