package epochlog

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type options struct {
	logger logrus.FieldLogger
}

type Option func(*options)

// WithLogger routes the aggregation diagnostics to logger instead of the
// logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load discovers the epoch logs of mode in dir and aggregates them.
func Load(dir string, mode Mode, opts ...Option) (*Table, error) {
	files, err := Discover(dir, mode)
	if err != nil {
		return nil, err
	}
	return Aggregate(dir, files, mode, opts...)
}

// Aggregate summarizes every file in files, in the given order, into one
// row per epoch. Any error aborts the whole run.
func Aggregate(dir string, files []string, mode Mode, opts ...Option) (*Table, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	table := &Table{
		Dir:  dir,
		Mode: mode,
		Rows: make([]EpochSummary, 0, len(files)),
	}

	var timestamps series
	for _, file := range files {
		row, err := summarizeFile(dir, file, mode)
		if err != nil {
			return nil, err
		}
		o.logger.WithFields(logrus.Fields{
			"file":  file,
			"epoch": row.Epoch,
			"steps": row.Steps,
		}).Debug("epoch log aggregated")

		if row.meanTimestamp != nil {
			timestamps.Add(*row.meanTimestamp)
		}
		table.Rows = append(table.Rows, row)
	}
	table.MeanTimestamp = timestamps.Mean()

	fields := logrus.Fields{
		"dir":    dir,
		"mode":   string(mode),
		"epochs": len(table.Rows),
	}
	if table.MeanTimestamp != nil {
		fields["mean_timestamp"] = *table.MeanTimestamp
	}
	o.logger.WithFields(fields).Info("run directory aggregated")

	return table, nil
}

func summarizeFile(dir string, file string, mode Mode) (EpochSummary, error) {
	epoch, err := EpochFromName(file)
	if err != nil {
		return EpochSummary{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return EpochSummary{}, errors.Wrapf(ErrFileSystem, "read epoch log %s: %v", file, err)
	}
	steps, err := parseDocument(file, data)
	if err != nil {
		return EpochSummary{}, err
	}

	var s epochSeries
	for i, raw := range steps {
		record, err := decodeStep(file, i, raw, mode)
		if err != nil {
			return EpochSummary{}, err
		}
		s.Add(record)

		accuracy, ok, err := record.Accuracy()
		if err != nil {
			return EpochSummary{}, errors.WithMessagef(err, "%s step %d", file, i)
		}
		if ok {
			s.accuracy.Add(accuracy)
		}
	}

	return s.Summary(epoch, len(steps)), nil
}
