package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meltworks/slagview-cli/internal/dataset"
)

// Decoder decodes one tabular file format into rows.
type Decoder interface {
	CanDecode(filename string) bool
	Decode(filename string, data []byte) ([]*dataset.Row, error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// File selects a decoder based on filename and returns the decoded rows.
// A failure here is fatal for the current import only; previously loaded
// data is the caller's to keep.
func File(path string) ([]*dataset.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	for _, d := range registry {
		if d.CanDecode(path) {
			return d.Decode(path, data)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

// ErrUnsupported indicates a file format without a registered decoder.
var ErrUnsupported = errors.New("unsupported file format")

func init() {
	Register(delimDecoder{})
	Register(xlsxDecoder{})
}
