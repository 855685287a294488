package checkoutControllers

import (
	"fmt"
	"net/url"
	"strings"

	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Intent is the ephemeral "what the user is about to order" aggregate,
// recomputed from cart lines and never persisted.
type Intent struct {
	Lines      []cartControllers.Line `json:"lines"`
	ItemCount  int                    `json:"item_count"`
	TotalPrice int64                  `json:"total_price"`
}

func BuildIntent(lines []cartControllers.Line) Intent {
	intent := Intent{Lines: lines}
	for _, line := range lines {
		intent.ItemCount += line.Quantity
		intent.TotalPrice += int64(line.Quantity) * line.UnitPrice
	}
	return intent
}

var nairaPrinter = message.NewPrinter(language.English)

// FormatNaira renders a whole-Naira amount with grouping and no
// fractional digits, e.g. 205000 -> "₦205,000". The same formatting is
// used in API payloads and the WhatsApp message.
func FormatNaira(amount int64) string {
	return nairaPrinter.Sprintf("₦%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// RenderMessage builds the order text sent to WhatsApp, iterating the
// lines in their stored order.
func RenderMessage(intent Intent) string {
	var b strings.Builder
	b.WriteString("Hello JeTech Hub! I would like to place an order:\n\n")
	for i, line := range intent.Lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.GadgetName)
		fmt.Fprintf(&b, "   Price: %s\n", FormatNaira(line.UnitPrice))
		fmt.Fprintf(&b, "   Quantity: %d\n", line.Quantity)
		if line.SwapEligible {
			b.WriteString("   (Swap available)\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %s", FormatNaira(intent.TotalPrice))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the
// shop's number and the rendered message pre-filled.
func WhatsAppLink(recipient, text string) string {
	return "https://wa.me/" + recipient + "?text=" + url.QueryEscape(text)
}
