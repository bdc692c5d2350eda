// Package editor opens the user's preferred text editor on a scratch file
// for long-form body editing. Candidates are tried in order: $VISUAL,
// $EDITOR, then a platform fallback list; the first that exits successfully
// wins. The edited text is treated as opaque markdown.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoEditor indicates no candidate editor could be launched.
var ErrNoEditor = errors.New("no usable editor found")

func candidates() []string {
	var out []string
	if v := os.Getenv("VISUAL"); v != "" {
		out = append(out, v)
	}
	if e := os.Getenv("EDITOR"); e != "" {
		out = append(out, e)
	}
	if runtime.GOOS == "windows" {
		return append(out, "notepad")
	}
	return append(out, "nano", "vim", "vi")
}

// Edit writes initial to a temp file, opens it in the first usable editor,
// and returns the file's content afterwards.
func Edit(initial string) (string, error) {
	tmp, err := os.CreateTemp("", "shiryoku-body-*.md")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing scratch file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing scratch file: %w", err)
	}

	var lastErr error
	for _, name := range candidates() {
		cmd := exec.Command(name, path)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			lastErr = err
			continue
		}

		edited, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading edited file: %w", err)
		}
		return string(edited), nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: last attempt: %v", ErrNoEditor, lastErr)
	}
	return "", ErrNoEditor
}
