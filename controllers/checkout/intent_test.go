package checkoutControllers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
)

func sampleLines() []cartControllers.Line {
	return []cartControllers.Line{
		{GadgetID: 10, GadgetName: "Phone X", UnitPrice: 100000, Quantity: 2, SwapEligible: true},
		{GadgetID: 11, GadgetName: "Charger", UnitPrice: 5000, Quantity: 1},
	}
}

func TestBuildIntentAggregates(t *testing.T) {
	intent := BuildIntent(sampleLines())

	assert.Equal(t, 3, intent.ItemCount)
	assert.Equal(t, int64(205000), intent.TotalPrice)
	assert.Len(t, intent.Lines, 2)
}

func TestBuildIntentEmpty(t *testing.T) {
	intent := BuildIntent(nil)

	assert.Zero(t, intent.ItemCount)
	assert.Zero(t, intent.TotalPrice)
	assert.Empty(t, intent.Lines)
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦0", FormatNaira(0))
	assert.Equal(t, "₦5,000", FormatNaira(5000))
	assert.Equal(t, "₦205,000", FormatNaira(205000))
	assert.Equal(t, "₦1,250,000", FormatNaira(1250000))
}

func TestRenderMessage(t *testing.T) {
	msg := RenderMessage(BuildIntent(sampleLines()))

	assert.True(t, strings.HasPrefix(msg, "Hello JeTech Hub! I would like to place an order:"))
	assert.Contains(t, msg, "1. Phone X")
	assert.Contains(t, msg, "Price: ₦100,000")
	assert.Contains(t, msg, "Quantity: 2")
	assert.Contains(t, msg, "(Swap available)")
	assert.Contains(t, msg, "2. Charger")
	assert.Contains(t, msg, "Total: ₦205,000")

	// Lines appear in stored order.
	assert.Less(t, strings.Index(msg, "1. Phone X"), strings.Index(msg, "2. Charger"))
}

func TestRenderMessageSwapLineOnlyWhenEligible(t *testing.T) {
	msg := RenderMessage(BuildIntent([]cartControllers.Line{
		{GadgetName: "Charger", UnitPrice: 5000, Quantity: 1},
	}))

	assert.NotContains(t, msg, "Swap available")
}

func TestWhatsAppLinkRoundTrip(t *testing.T) {
	msg := RenderMessage(BuildIntent(sampleLines()))
	link := WhatsAppLink("2348108126642", msg)

	require.True(t, strings.HasPrefix(link, "https://wa.me/2348108126642?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, parsed.Query().Get("text"))
}
