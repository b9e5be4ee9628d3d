package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates fields and timings across one request so they come out
// as a single structured line. Timings are written from deferred closures and
// may race with each other, hence the mutex; data fields are only written
// from the request goroutine.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  map[string]interface{}
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(map[string]interface{}),
		logger:  logger,
	}
}

// AddTiming starts a timer for entryName and returns the closure that stops
// it, usually deferred at the top of the measured section.
func (l *LogData) AddTiming(entryName string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[entryName] = elapsed
	}
}

// AddToExistingTiming accumulates into an existing timer, for sections that
// run more than once per request.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[entryName] += elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.fields[key] = value
}

// Log builds the entry carrying everything collected so far.
func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)
	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, value := range l.timings {
		entry = entry.WithField(key, value)
	}
	return entry
}
