package learned

import (
	"sort"

	"algobench/pkg/common"
	"algobench/pkg/model"
)

// linearScanWindow is the error window below which Get scans instead of bisecting.
const linearScanWindow = 16

type DiagnosticPoint struct {
	Key          int
	RealPos      int
	PredictedPos int
	Error        int
}

// Index answers id lookups over an id-sorted slice by predicting the
// position and searching only inside the model's recorded error bounds.
type Index struct {
	Records []common.Record
	Model   *model.RMIModel
	MinErr  int
	MaxErr  int
}

// Build trains on sorted, which must be ordered ascending by id.
// The slice is retained, not copied.
func Build(sorted []common.Record, fanout int) *Index {
	keys := make([]int, len(sorted))
	for i, r := range sorted {
		keys[i] = r.ID
	}

	rmi := model.NewRMIModel(fanout)
	rmi.Train(keys)

	minErr, maxErr := 0, 0
	for i, key := range keys {
		err := i - rmi.Predict(key)
		if err < minErr {
			minErr = err
		}
		if err > maxErr {
			maxErr = err
		}
	}

	return &Index{
		Records: sorted,
		Model:   rmi,
		MinErr:  minErr,
		MaxErr:  maxErr,
	}
}

func (li *Index) Get(id int) (common.Record, bool) {
	if len(li.Records) == 0 {
		return common.Record{}, false
	}

	predictedPos := li.Model.Predict(id)
	low := predictedPos + li.MinErr
	high := predictedPos + li.MaxErr

	if low < 0 {
		low = 0
	}
	if high >= len(li.Records) {
		high = len(li.Records) - 1
	}
	if low > high {
		return common.Record{}, false
	}

	if high-low < linearScanWindow {
		for i := low; i <= high; i++ {
			if li.Records[i].ID == id {
				return li.Records[i], true
			}
			if li.Records[i].ID > id {
				break
			}
		}
		return common.Record{}, false
	}

	window := li.Records[low : high+1]
	i := sort.Search(len(window), func(i int) bool {
		return window[i].ID >= id
	})
	if i < len(window) && window[i].ID == id {
		return window[i], true
	}
	return common.Record{}, false
}

func (li *Index) Size() int {
	return len(li.Records)
}

// ExportDiagnostics samples at most ~5000 prediction errors.
func (li *Index) ExportDiagnostics() []DiagnosticPoint {
	if len(li.Records) == 0 {
		return nil
	}
	step := 1
	if len(li.Records) > 5000 {
		step = len(li.Records) / 5000
	}

	results := make([]DiagnosticPoint, 0, len(li.Records)/step)
	for i := 0; i < len(li.Records); i += step {
		key := li.Records[i].ID
		pred := li.Model.Predict(key)
		results = append(results, DiagnosticPoint{
			Key:          key,
			RealPos:      i,
			PredictedPos: pred,
			Error:        i - pred,
		})
	}
	return results
}

func (li *Index) Type() string {
	return "Learned-RMI"
}
