package debug

import (
	"fmt"
	"sync"
	"time"
)

// Logger is the centralized, component-scoped logging facility shared by the
// CPU, PPU, memory, timer, and input packages. Everything steps from a
// single control thread, so entries are appended directly under a mutex
// rather than funneled through a channel and a background drain goroutine.
type Logger struct {
	mu         sync.RWMutex
	entries    []LogEntry
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	minLevel         LogLevel
}

// NewLogger creates a logger with the given circular-buffer capacity.
// Logging is opt-in per component; callers enable the ones they care about
// with SetComponentEnabled.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 100 {
		maxEntries = 100
	}

	return &Logger{
		entries:    make([]LogEntry, maxEntries),
		maxEntries: maxEntries,
		componentEnabled: map[Component]bool{
			ComponentCPU:    false,
			ComponentPPU:    false,
			ComponentMemory: false,
			ComponentTimer:  false,
			ComponentInput:  false,
			ComponentSystem: false,
		},
		minLevel: LogLevelInfo,
	}
}

// Log records a message if its component is enabled and its level clears
// the configured minimum.
func (l *Logger) Log(component Component, level LogLevel, message string, data map[string]interface{}) {
	l.mu.RLock()
	enabled := l.componentEnabled[component]
	minLevel := l.minLevel
	l.mu.RUnlock()

	if !enabled || level < minLevel {
		return
	}

	entry := LogEntry{Component: component, Level: level, Message: message, Data: data}
	entry.Timestamp = time.Now()

	l.mu.Lock()
	l.entries[l.writeIndex] = entry
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
	l.mu.Unlock()
}

// Logf logs a formatted message.
func (l *Logger) Logf(component Component, level LogLevel, format string, args ...interface{}) {
	l.Log(component, level, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) LogCPU(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentCPU, level, message, data)
}

func (l *Logger) LogPPU(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentPPU, level, message, data)
}

func (l *Logger) LogMemory(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentMemory, level, message, data)
}

func (l *Logger) LogTimer(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentTimer, level, message, data)
}

func (l *Logger) LogInput(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentInput, level, message, data)
}

func (l *Logger) LogSystem(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentSystem, level, message, data)
}

func (l *Logger) LogCPUf(level LogLevel, format string, args ...interface{}) {
	l.Logf(ComponentCPU, level, format, args...)
}

func (l *Logger) LogPPUf(level LogLevel, format string, args ...interface{}) {
	l.Logf(ComponentPPU, level, format, args...)
}

func (l *Logger) LogMemoryf(level LogLevel, format string, args ...interface{}) {
	l.Logf(ComponentMemory, level, format, args...)
}

// GetEntries returns a copy of all buffered entries, oldest first.
func (l *Logger) GetEntries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.entryCount == 0 {
		return []LogEntry{}
	}

	entries := make([]LogEntry, l.entryCount)
	if l.entryCount < l.maxEntries {
		copy(entries, l.entries[:l.entryCount])
		return entries
	}
	for i := 0; i < l.entryCount; i++ {
		idx := (l.writeIndex + i) % l.maxEntries
		entries[i] = l.entries[idx]
	}
	return entries
}

// GetRecentEntries returns up to the last count entries.
func (l *Logger) GetRecentEntries(count int) []LogEntry {
	all := l.GetEntries()
	if count >= len(all) {
		return all
	}
	return all[len(all)-count:]
}

// Clear empties the buffer without changing component/level configuration.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entryCount = 0
	l.writeIndex = 0
}

// SetComponentEnabled toggles whether a component's log calls are recorded.
func (l *Logger) SetComponentEnabled(component Component, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.componentEnabled[component] = enabled
}

// IsComponentEnabled reports whether a component is currently recorded.
func (l *Logger) IsComponentEnabled(component Component) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.componentEnabled[component]
}

// SetMinLevel sets the minimum level entries must clear to be recorded.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// GetMinLevel returns the currently configured minimum level.
func (l *Logger) GetMinLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minLevel
}
