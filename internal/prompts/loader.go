// Package prompts builds the deterministic system/user prompt pairs for
// each pipeline task. Templates are embedded at compile time; building a
// prompt is a pure function of the task and its inputs.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.txt
var promptFiles embed.FS

var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves an embedded prompt template by filename.
func Get(filename string) (string, error) {
	cacheMu.RLock()
	if tmpl, ok := cache[filename]; ok {
		cacheMu.RUnlock()
		return tmpl, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	tmpl := string(data)

	cacheMu.Lock()
	cache[filename] = tmpl
	cacheMu.Unlock()
	return tmpl, nil
}

// MustGet retrieves a template, panicking if it is missing. Templates are
// embedded, so a miss is a programming error, not a runtime condition.
func MustGet(filename string) string {
	tmpl, err := Get(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format replaces placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
