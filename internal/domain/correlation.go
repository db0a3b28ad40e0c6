package domain

// CorrelationMatrix is a symmetric matrix of Pearson coefficients over
// aligned daily returns, with the arithmetic mean return (as a percentage)
// of each asset carried alongside for annotation.
type CorrelationMatrix struct {
	Assets       []string
	Coefficients map[string]map[string]float64
	MeanReturns  map[string]float64
}

// At returns the coefficient for a pair of assets.
func (m CorrelationMatrix) At(a, b string) (float64, bool) {
	row, ok := m.Coefficients[a]
	if !ok {
		return 0, false
	}
	v, ok := row[b]
	return v, ok
}
