package model

// LinearModel is a least-squares fit of position against key.
type LinearModel struct {
	Slope     float64
	Intercept float64
	n         float64
	sumX      float64
	sumY      float64
	sumXY     float64
	sumXX     float64
}

func NewLinearModel() *LinearModel {
	return &LinearModel{}
}

// Train fits keys[i] -> i.
func (lm *LinearModel) Train(keys []int) {
	positions := make([]int, len(keys))
	for i := range positions {
		positions[i] = i
	}
	lm.TrainWithPos(keys, positions)
}

// TrainWithPos fits keys[i] -> positions[i].
func (lm *LinearModel) TrainWithPos(keys []int, positions []int) {
	lm.n = float64(len(keys))
	lm.sumX, lm.sumY, lm.sumXY, lm.sumXX = 0, 0, 0, 0

	for i, key := range keys {
		x := float64(key)
		y := float64(positions[i])

		lm.sumX += x
		lm.sumY += y
		lm.sumXY += x * y
		lm.sumXX += x * x
	}
	lm.solve()
}

func (lm *LinearModel) solve() {
	denominator := lm.n*lm.sumXX - lm.sumX*lm.sumX
	if denominator == 0 {
		lm.Slope = 0
		if lm.n > 0 {
			lm.Intercept = lm.sumY / lm.n
		} else {
			lm.Intercept = 0
		}
		return
	}
	lm.Slope = (lm.n*lm.sumXY - lm.sumX*lm.sumY) / denominator
	lm.Intercept = (lm.sumY - lm.Slope*lm.sumX) / lm.n
}

func (lm *LinearModel) Predict(key int) int {
	return int(lm.Slope*float64(key) + lm.Intercept)
}
