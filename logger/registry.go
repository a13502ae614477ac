package logger

import (
	"sync"
)

// defaultComponents are the component loggers every fusion pipeline touches.
// Init seeds the registry with these so Get hands out a registered logger
// for each without per-package Register calls.
var defaultComponents = []string{
	"engine",
	"provider",
	"transcription",
	"diarization",
	"config",
	"observability",
}

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers component loggers derived from the global
// logger. With no arguments it registers the fusion pipeline component set;
// Init calls it after replacing the global logger so the seeded loggers pick
// up the new configuration.
func RegisterDefaults(names ...string) {
	if len(names) == 0 {
		names = defaultComponents
	}
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
