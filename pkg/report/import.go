package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/stackscout/pkg/detect"
)

// ReadJSON decodes a JSON report from r.
//
// The document must carry an ecosystem detection; analysis never emits a
// report without one, so its absence means the input is not a report.
// The returned report is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*detect.Report, error) {
	var rep detect.Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if rep.Detection.Ecosystem == "" {
		return nil, fmt.Errorf("document has no ecosystem detection")
	}
	return &rep, nil
}

// ImportJSON reads a JSON file at path and returns the decoded report.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*detect.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
