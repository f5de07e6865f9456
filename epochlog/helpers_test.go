package epochlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStep(loss float64, preds [][]float64, actions []float64, cpu float64) map[string]interface{} {
	return map[string]interface{}{
		"train_loss":       loss,
		"test_loss":        loss,
		FIELD_ACTIONS_PRED: preds,
		FIELD_ACTIONS:      actions,
		FIELD_TIMESTAMP:    100.0,
		FIELD_CPU:          cpu,
		FIELD_RAM:          40.0,
		FIELD_GPU:          70.0,
		FIELD_VRAM:         55.0,
		FIELD_DISK_READ:    1.5,
		FIELD_DISK_WRITE:   0.5,
	}
}

func writeLog(t *testing.T, dir string, name string, steps []map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"steps": steps})
	require.NoError(t, err)
	writeRaw(t, dir, name, string(data))
}

func writeRaw(t *testing.T, dir string, name string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
