package services

// Pricing is fixed-rate and computed in whole rupees. The same functions feed
// both the displayed breakdown and the amount actually charged, so the two can
// never diverge.
const (
	TaxRatePercent    = 18
	CODAdvancePercent = 10

	// MinOnlineAmount is the subtotal below which only cash-on-delivery is
	// offered.
	MinOnlineAmount = 500
)

// roundPercent returns pct% of amount, rounded half-up to the nearest rupee.
func roundPercent(amount, pct int) int {
	return (amount*pct + 50) / 100
}

func Tax(subtotal int) int {
	return roundPercent(subtotal, TaxRatePercent)
}

func TotalWithTax(subtotal int) int {
	return subtotal + Tax(subtotal)
}

// CODAdvance is the amount collected at order time on the cash-on-delivery
// path; the remainder is collected at physical delivery.
func CODAdvance(subtotal int) int {
	return roundPercent(subtotal, CODAdvancePercent)
}

func OnlineEligible(subtotal int) bool {
	return subtotal >= MinOnlineAmount
}
