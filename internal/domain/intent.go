package domain

// Intent is a discrete user goal the resolver maps free text onto.
type Intent string

const (
	IntentNone                 Intent = ""
	IntentGreeting             Intent = "greeting"
	IntentMenuRequest          Intent = "menu_request"
	IntentCartRequest          Intent = "cart_request"
	IntentOrderRequest         Intent = "order_request"
	IntentPriceRequest         Intent = "price_request"
	IntentCompleteOrderRequest Intent = "complete_order_request"
	IntentClearCartRequest     Intent = "clear_cart_request"
	IntentGoodbye              Intent = "goodbye"
)

var allIntents = []Intent{
	IntentGreeting,
	IntentMenuRequest,
	IntentCartRequest,
	IntentOrderRequest,
	IntentPriceRequest,
	IntentCompleteOrderRequest,
	IntentClearCartRequest,
	IntentGoodbye,
}

// AllIntents returns every known intent label in a fixed order.
func AllIntents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

// IsValid returns true if i is a known, non-empty intent label.
func (i Intent) IsValid() bool {
	for _, known := range allIntents {
		if i == known {
			return true
		}
	}
	return false
}
