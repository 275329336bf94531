package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fern/types"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs a function call
func (t *Tracer) Call(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = arg.String()
	}
	argsStr := strings.Join(argStrs, ", ")

	fmt.Fprintf(t.writer, "[TRACE] CALL %s(%s)\n", name, argsStr)
}

// Return logs a function's completion
func (t *Tracer) Return(name string, result types.Result) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if result.IsError() {
		fmt.Fprintf(t.writer, "[TRACE] ERROR %s: %s\n", name, result.Err.Message)
		return
	}

	resultStr := "nil"
	if result.Val != nil {
		resultStr = result.Val.String()
	}
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, resultStr)
}

// Global convenience functions

// Call logs a function call using the global tracer
func Call(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs a function's completion using the global tracer
func Return(name string, result types.Result) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}
