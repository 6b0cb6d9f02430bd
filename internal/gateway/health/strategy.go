package health

// SuccessRateStrategy folds one call outcome into a running success rate.
type SuccessRateStrategy interface {
	Update(current float64, success bool) float64
}
