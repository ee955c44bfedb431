package commands

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"
)

// marshalJSONOrFallback renders v compactly for scripts and indented when
// written to a terminal.
func marshalJSONOrFallback(v any, indent bool) string {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err == nil {
		return string(data) + "\n"
	}

	// Best-effort fallback: always return valid JSON for callers piping into jq.
	fallback, fallbackErr := json.Marshal(map[string]string{
		"error": "failed to marshal JSON output",
	})
	if fallbackErr != nil {
		return "{}\n"
	}
	return string(fallback) + "\n"
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
