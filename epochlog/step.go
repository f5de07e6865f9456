package epochlog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	FIELD_ACTIONS_PRED = "actions_pred"
	FIELD_ACTIONS      = "actions"
	FIELD_TIMESTAMP    = "timestamps_each_step"
	FIELD_CPU          = "CPU Usage"
	FIELD_RAM          = "RAM Usage"
	FIELD_GPU          = "GPU Usage"
	FIELD_VRAM         = "VRAM Usage"
	FIELD_DISK_READ    = "Disk Read Speed (MB/s)"
	FIELD_DISK_WRITE   = "Disk Write Speed (MB/s)"
)

type epochDocument struct {
	Steps *[]map[string]json.RawMessage `json:"steps"`
}

func parseDocument(file string, data []byte) ([]map[string]json.RawMessage, error) {
	var doc epochDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %v", file, err)
	}
	if doc.Steps == nil {
		return nil, errors.Wrapf(ErrParse, "%s: no \"steps\" key", file)
	}
	return *doc.Steps, nil
}

// stepDecoder pulls typed fields out of one raw step, the first absent
// field stops it.
type stepDecoder struct {
	file string
	step int
	raw  map[string]json.RawMessage
}

func (d *stepDecoder) field(name string) (json.RawMessage, error) {
	v, ok := d.raw[name]
	if !ok || string(v) == "null" {
		return nil, &FieldMissingError{File: d.file, Step: d.step, Field: name}
	}
	return v, nil
}

func (d *stepDecoder) invalid(name string, err error) error {
	return errors.Wrapf(ErrParse, "%s step %d: field %q: %v", d.file, d.step, name, err)
}

func (d *stepDecoder) float(name string, dst *float64) error {
	v, err := d.field(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return d.invalid(name, err)
	}
	return nil
}

// timestamp accepts a JSON number or a string holding one.
func (d *stepDecoder) timestamp(dst *float64) error {
	v, err := d.field(FIELD_TIMESTAMP)
	if err != nil {
		return err
	}
	if json.Unmarshal(v, dst) == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return d.invalid(FIELD_TIMESTAMP, err)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return d.invalid(FIELD_TIMESTAMP, err)
	}
	*dst = f
	return nil
}

func (d *stepDecoder) scores(dst *[][]float64) error {
	v, err := d.field(FIELD_ACTIONS_PRED)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return d.invalid(FIELD_ACTIONS_PRED, err)
	}
	return nil
}

func (d *stepDecoder) actions(dst *[]float64) error {
	v, err := d.field(FIELD_ACTIONS)
	if err != nil {
		return err
	}
	var raw interface{}
	if err := json.Unmarshal(v, &raw); err != nil {
		return d.invalid(FIELD_ACTIONS, err)
	}
	flat, err := FlattenNumbers(raw)
	if err != nil {
		return d.invalid(FIELD_ACTIONS, err)
	}
	*dst = flat
	return nil
}

// decodeStep validates every field the aggregation reads for mode and
// returns the typed record.
func decodeStep(file string, index int, raw map[string]json.RawMessage, mode Mode) (StepRecord, error) {
	d := &stepDecoder{file: file, step: index, raw: raw}
	var r StepRecord

	decoders := []func() error{
		func() error { return d.float(mode.LossField(), &r.Loss) },
		func() error { return d.scores(&r.PredictedScores) },
		func() error { return d.actions(&r.Actions) },
		func() error { return d.timestamp(&r.Timestamp) },
		func() error { return d.float(FIELD_CPU, &r.CPU) },
		func() error { return d.float(FIELD_RAM, &r.RAM) },
		func() error { return d.float(FIELD_GPU, &r.GPU) },
		func() error { return d.float(FIELD_VRAM, &r.VRAM) },
		func() error { return d.float(FIELD_DISK_READ, &r.DiskRead) },
		func() error { return d.float(FIELD_DISK_WRITE, &r.DiskWrite) },
	}
	for _, decode := range decoders {
		if err := decode(); err != nil {
			return StepRecord{}, err
		}
	}
	return r, nil
}

// Accuracy is the fraction of prediction rows whose argmax matches the
// classified true action. ok is false when the step has no rows.
func (r StepRecord) Accuracy() (accuracy float64, ok bool, err error) {
	truth := ClassifyAll(r.Actions)
	if len(r.PredictedScores) != len(truth) {
		return 0, false, errors.Wrapf(ErrParse, "%d prediction rows for %d true actions",
			len(r.PredictedScores), len(truth))
	}
	if len(truth) == 0 {
		return 0, false, nil
	}

	correct := 0
	for i, row := range r.PredictedScores {
		if len(row) == 0 {
			return 0, false, errors.Wrapf(ErrParse, "prediction row %d has no class scores", i)
		}
		if argmax(row) == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth)), true, nil
}
