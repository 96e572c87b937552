package asset

// Available is the quantity that can still be lent out. It is always derived
// from the open ledger entries and never stored.
func Available(total, openQuantity int) int {
	available := total - openQuantity
	if available < 0 {
		return 0
	}
	return available
}
