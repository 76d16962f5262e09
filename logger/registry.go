package logger

import "sync"

// loggers maps component names to registered loggers.
var loggers sync.Map

// Register makes l the logger Get returns for name.
func Register(name string, l *Logger) {
	loggers.Store(name, l)
}

// Unregister removes the logger registered for name.
func Unregister(name string) {
	loggers.Delete(name)
}

// Get returns the logger registered for name, or the global logger tagged
// with name as its component.
func Get(name string) *Logger {
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}
