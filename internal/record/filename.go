package record

import (
	"fmt"
	"path/filepath"
	"time"
)

// Filename returns the output name for a single-take recording:
// <gesture>_<unix>.json.
func Filename(gestureName string, at time.Time) string {
	return fmt.Sprintf("%s_%d.json", gestureName, at.Unix())
}

// AttemptFilename returns the output name for a batch take:
// <gesture>_<attempt>_<unix>.json.
func AttemptFilename(gestureName string, attempt int, at time.Time) string {
	return fmt.Sprintf("%s_%d_%d.json", gestureName, attempt, at.Unix())
}

// OutputPath joins the data directory and a recording filename.
func OutputPath(dataDir, filename string) string {
	return filepath.Join(dataDir, filename)
}
