package model

// RMIModel is a two-stage recursive model. The first stage routes a key to a
// bucket by its position in the key range; the second stage is one linear fit
// per bucket.
type RMIModel struct {
	globalMin int
	globalMax int
	fanout    int
	buckets   []*LinearModel
}

func NewRMIModel(fanout int) *RMIModel {
	if fanout < 1 {
		fanout = 1
	}
	return &RMIModel{
		fanout:  fanout,
		buckets: make([]*LinearModel, fanout),
	}
}

// Train expects keys sorted ascending; a key's position is its index.
func (rmi *RMIModel) Train(keys []int) {
	for i := range rmi.buckets {
		rmi.buckets[i] = NewLinearModel()
	}
	if len(keys) == 0 {
		return
	}

	rmi.globalMin = keys[0]
	rmi.globalMax = keys[len(keys)-1]

	bucketKeys := make([][]int, rmi.fanout)
	bucketPoss := make([][]int, rmi.fanout)
	for i, key := range keys {
		b := rmi.bucket(key)
		bucketKeys[b] = append(bucketKeys[b], key)
		bucketPoss[b] = append(bucketPoss[b], i)
	}

	for i := 0; i < rmi.fanout; i++ {
		rmi.buckets[i].TrainWithPos(bucketKeys[i], bucketPoss[i])
	}
}

func (rmi *RMIModel) Predict(key int) int {
	if rmi.buckets[0] == nil {
		return 0
	}
	return rmi.buckets[rmi.bucket(key)].Predict(key)
}

// bucket is the layer-1 mapping (key - min) / range * fanout, clamped.
func (rmi *RMIModel) bucket(key int) int {
	keyRange := float64(rmi.globalMax - rmi.globalMin)
	if keyRange == 0 {
		return 0
	}
	b := int(float64(key-rmi.globalMin) / keyRange * float64(rmi.fanout))
	if b >= rmi.fanout {
		b = rmi.fanout - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}
