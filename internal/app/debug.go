package app

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// debugLog appends timestamped lines to a file. The terminal itself is never
// used for diagnostics while the pager is on screen.
type debugLog struct {
	path string
	mu   sync.Mutex
}

func newDebugLog(path string) *debugLog {
	return &debugLog{path: path}
}

func (l *debugLog) printf(format string, args ...interface{}) {
	if l == nil || l.path == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
