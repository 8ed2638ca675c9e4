// Package main provides an archive hook: it copies exported session
// files into a date-partitioned archive directory.
//
// Build with `go build -o archive .` in this directory.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Request represents the input from the hook executor.
type Request struct {
	Event       string          `json:"event"`
	SessionID   string          `json:"session_id"`
	GestureName string          `json:"gesture_name"`
	FilePath    string          `json:"file_path"`
	Metadata    json.RawMessage `json:"metadata"`
}

// Response represents the output to the hook executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if req.FilePath == "" {
		writeErrorResponse("file_path is required")
		return
	}

	dest, err := archive(req.FilePath)
	if err != nil {
		writeErrorResponse(err.Error())
		return
	}

	data, _ := json.Marshal(map[string]string{"archived_to": dest})
	json.NewEncoder(os.Stdout).Encode(Response{Success: true, Data: data})
}

// archive copies the session file into archive/<YYYY-MM-DD>/. The
// executor runs hooks with the hook directory as working directory, so
// the archive lands next to this binary unless ARCHIVE_DIR overrides
// it.
func archive(src string) (string, error) {
	root := os.Getenv("ARCHIVE_DIR")
	if root == "" {
		root = "archive"
	}

	dir := filepath.Join(root, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(src))
	if err := copyFile(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}

func writeErrorResponse(errMsg string) {
	json.NewEncoder(os.Stdout).Encode(Response{Success: false, Error: errMsg})
}
