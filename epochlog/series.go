package epochlog

import "sort"

// series collects the readings of one metric across the steps of an epoch.
type series []float64

func (s *series) Add(v float64) {
	*s = append(*s, v)
}

// Mean is nil for an empty series.
func (s series) Mean() *float64 {
	if len(s) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	mean := sum / float64(len(s))
	return &mean
}

// Median averages the two middle values for an even count, nil when empty.
func (s series) Median() *float64 {
	if len(s) == 0 {
		return nil
	}
	sorted := make([]float64, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &median
}

// epochSeries holds one series per aggregated metric.
type epochSeries struct {
	loss      series
	accuracy  series
	timestamp series
	cpu       series
	ram       series
	gpu       series
	vram      series
	diskRead  series
	diskWrite series
}

func (e *epochSeries) Add(r StepRecord) {
	e.loss.Add(r.Loss)
	e.timestamp.Add(r.Timestamp)
	e.cpu.Add(r.CPU)
	e.ram.Add(r.RAM)
	e.gpu.Add(r.GPU)
	e.vram.Add(r.VRAM)
	e.diskRead.Add(r.DiskRead)
	e.diskWrite.Add(r.DiskWrite)
}

func (e *epochSeries) Summary(epoch int, steps int) EpochSummary {
	return EpochSummary{
		Epoch:              epoch,
		MeanLoss:           e.loss.Mean(),
		MedianLoss:         e.loss.Median(),
		MeanAccuracy:       e.accuracy.Mean(),
		MeanCPUUsage:       e.cpu.Mean(),
		MeanRAMUsage:       e.ram.Mean(),
		MeanGPUUsage:       e.gpu.Mean(),
		MeanVRAMUsage:      e.vram.Mean(),
		MeanDiskReadSpeed:  e.diskRead.Mean(),
		MeanDiskWriteSpeed: e.diskWrite.Mean(),
		Steps:              steps,
		meanTimestamp:      e.timestamp.Mean(),
	}
}
