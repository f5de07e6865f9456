package epochlog

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EpochFromName parses the epoch index out of a log file name, it is the
// token after the last underscore with the extension removed.
func EpochFromName(name string) (int, error) {
	base := filepath.Base(name)
	token := base[strings.LastIndex(base, "_")+1:]
	if dot := strings.Index(token, "."); dot >= 0 {
		token = token[:dot]
	}

	epoch, err := strconv.Atoi(token)
	if err != nil || epoch < 0 {
		return 0, errors.Wrapf(ErrParse, "%s: no epoch index in file name", name)
	}
	return epoch, nil
}

// Discover lists the epoch logs of mode in dir, ordered by epoch index.
func Discover(dir string, mode Mode) ([]string, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrFileSystem, "read run directory %s: %v", dir, err)
	}

	type candidate struct {
		name  string
		epoch int
	}
	found := make([]candidate, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, mode.Prefix()) || !strings.HasSuffix(name, LOG_SUFFIX) {
			continue
		}
		epoch, err := EpochFromName(name)
		if err != nil {
			return nil, err
		}
		found = append(found, candidate{name: name, epoch: epoch})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].epoch < found[j].epoch
	})

	files := make([]string, len(found))
	for i, c := range found {
		files[i] = c.name
	}
	return files, nil
}
