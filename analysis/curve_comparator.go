package analysis

import (
	"path"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
)

// CurveComparator saves the dataset of every experiment, keyed by
// experiment name, to a JSON file for external plotting
type CurveComparator struct {
	savePath string
}

var _ core.Comparator = &CurveComparator{}

func NewCurveComparator(savePath, fileName string) *CurveComparator {
	return &CurveComparator{
		savePath: path.Join(savePath, fileName),
	}
}

func (j *CurveComparator) Compare(experimentNames []string, datasets []core.DataSet) error {
	out := make(map[string]core.DataSet)
	for i, name := range experimentNames {
		out[name] = datasets[i]
	}
	return util.SaveJson(j.savePath, out)
}
