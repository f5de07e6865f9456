package epochlog

import "github.com/pkg/errors"

type Mode string

const (
	ModeTraining Mode = "Training"
	ModeTesting  Mode = "Testing"
)

const (
	TRAIN_PREFIX = "custom_logs_epoch_train_"
	TEST_PREFIX  = "custom_logs_epoch_test_"
	LOG_SUFFIX   = ".json"
)

// Validate reports a configuration error for anything but Training and Testing.
func (m Mode) Validate() error {
	switch m {
	case ModeTraining, ModeTesting:
		return nil
	}
	return errors.Wrapf(ErrConfiguration, "unrecognized mode tag %q", string(m))
}

func (m Mode) Prefix() string {
	if m == ModeTesting {
		return TEST_PREFIX
	}
	return TRAIN_PREFIX
}

// LossField is the per-step loss key written for this mode.
func (m Mode) LossField() string {
	if m == ModeTesting {
		return "test_loss"
	}
	return "train_loss"
}

type StepRecord struct {
	Loss            float64
	PredictedScores [][]float64
	Actions         []float64
	Timestamp       float64
	CPU             float64
	RAM             float64
	GPU             float64
	VRAM            float64
	DiskRead        float64
	DiskWrite       float64
}

// EpochSummary is one row of the result table. A nil mean says the epoch
// log had no steps, it is never reported as 0.
type EpochSummary struct {
	Epoch              int      `json:"Epoch"`
	MeanLoss           *float64 `json:"Mean Loss"`
	MedianLoss         *float64 `json:"Median Loss"`
	MeanAccuracy       *float64 `json:"Mean Accuracy"`
	MeanCPUUsage       *float64 `json:"Mean CPU Usage"`
	MeanRAMUsage       *float64 `json:"Mean RAM Usage"`
	MeanGPUUsage       *float64 `json:"Mean GPU Usage"`
	MeanVRAMUsage      *float64 `json:"Mean VRAM Usage"`
	MeanDiskReadSpeed  *float64 `json:"Mean Disk Read Speed"`
	MeanDiskWriteSpeed *float64 `json:"Mean Disk Write Speed"`

	Steps         int `json:"-"`
	meanTimestamp *float64
}

var columns = []string{
	"Epoch",
	"Mean Loss",
	"Median Loss",
	"Mean Accuracy",
	"Mean CPU Usage",
	"Mean RAM Usage",
	"Mean GPU Usage",
	"Mean VRAM Usage",
	"Mean Disk Read Speed",
	"Mean Disk Write Speed",
}

// values returns the nullable columns after Epoch, in column order.
func (s EpochSummary) values() []*float64 {
	return []*float64{
		s.MeanLoss,
		s.MedianLoss,
		s.MeanAccuracy,
		s.MeanCPUUsage,
		s.MeanRAMUsage,
		s.MeanGPUUsage,
		s.MeanVRAMUsage,
		s.MeanDiskReadSpeed,
		s.MeanDiskWriteSpeed,
	}
}

type Table struct {
	Dir  string         `json:"dir"`
	Mode Mode           `json:"mode"`
	Rows []EpochSummary `json:"rows"`

	// MeanTimestamp is the mean of the per-epoch step timestamp means. It
	// is diagnostic only and not a column.
	MeanTimestamp *float64 `json:"mean_timestamp"`
}

func Columns() []string {
	c := make([]string, len(columns))
	copy(c, columns)
	return c
}

func (t *Table) Epochs() []int {
	epochs := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		epochs[i] = r.Epoch
	}
	return epochs
}
