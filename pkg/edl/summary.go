package edl

import (
	"io"
	"path"

	"github.com/adgenicam/gcgen/internal/output"
)

// BaseScreen is the areaDetector screen embedded at the top of the summary.
const BaseScreen = "areaDetectorScreens/ADBase.edl"

// Summary writes the camera's summary screen.
type Summary struct {
	opts Options
}

// NewSummary creates a summary screen writer.
func NewSummary(opts Options) *Summary {
	return &Summary{opts: opts}
}

// Write writes the summary screen.
func (s *Summary) Write(w io.Writer) error {
	return render(w, "summary", summaryData{
		BaseScreen:     BaseScreen,
		CameraScreen:   path.Join(s.opts.ScreenDir, s.opts.CameraType+"Camera.edl"),
		FeaturesScreen: path.Join(s.opts.ScreenDir, s.opts.Camera+"-features.edl"),
	})
}

// WriteFile writes the summary screen to path unless path already exists.
// It reports whether it wrote the file.
func (s *Summary) WriteFile(path string) (bool, error) {
	exists, err := output.Exists(path)
	if err != nil || exists {
		return false, err
	}
	if err := output.WriteFile(path, s.Write); err != nil {
		return false, err
	}
	return true, nil
}
