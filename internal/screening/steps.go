package screening

// DefaultSteps returns the screening pipeline in its canonical order.
func DefaultSteps() []Filter {
	return []Filter{
		NewExcludeDegraded(),
		NewMinTier(),
		NewMinScore(),
	}
}
