package util

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

const (
	// The canonical timestamp format used in reports and logs.
	// Always UTC, lexigraphically sortable.
	TimestampFormat = time.RFC3339Nano
)

func Thens(tim time.Time) string {
	return tim.UTC().Format(TimestampFormat)
}

func Nows() string {
	return time.Now().UTC().Format(TimestampFormat)
}

func ParseTime(str string) (time.Time, error) {
	return time.Parse(TimestampFormat, str)
}

// FileExists checks if given file exists
func FileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func MemoryUsage() string {
	m := runtime.MemStats{}
	runtime.ReadMemStats(&m)
	mb := m.Sys / 1024 / 1024
	return fmt.Sprintf("%v MB", mb)
}

func DumpProcessTrace() {
	buf := make([]byte, 64*1024)
	_ = runtime.Stack(buf, true)
	Info("FULL PROCESS THREAD DUMP:")
	Info(string(buf))
}
