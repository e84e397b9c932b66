// Package model holds the position predictors behind the learned index.
package model

// Model maps a key to its predicted position in a sorted array.
type Model interface {
	Train(keys []int)
	Predict(key int) int
}
