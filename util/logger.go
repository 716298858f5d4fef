package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	alog "github.com/apex/log"
)

// colors.
const (
	red    = 31
	yellow = 33
	blue   = 34
	gray   = 37
)

// Colors mapping.
var Colors = [...]int{
	alog.DebugLevel: gray,
	alog.InfoLevel:  blue,
	alog.WarnLevel:  yellow,
	alog.ErrorLevel: red,
	alog.FatalLevel: red,
}

// Strings mapping.
var Strings = [...]string{
	alog.DebugLevel: "DEBUG",
	alog.InfoLevel:  "INFO",
	alog.WarnLevel:  "WARN",
	alog.ErrorLevel: "ERROR",
	alog.FatalLevel: "FATAL",
}

type LogHandler struct {
	mu     sync.Mutex
	Writer io.Writer
}

func (h *LogHandler) HandleLog(e *alog.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]
	names := e.Fields.Names()
	ts := time.Now().UTC().Format(time.RFC3339Nano)

	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.Writer, "\033[%dm%6s\033[0m %s %-25s", color, level, ts, e.Message)

	for _, name := range names {
		fmt.Fprintf(h.Writer, " \033[%dm%s\033[0m=%v", color, name, e.Fields.Get(name))
	}

	fmt.Fprintln(h.Writer)

	return nil
}

// This generic logging interface hides the apex/log implementation from the
// rest of the codebase.
type Logger interface {
	Debug(arg string)
	Debugf(format string, args ...interface{})
	Info(arg string)
	Infof(format string, args ...interface{})
	Warn(arg string)
	Warnf(format string, args ...interface{})
	Error(arg string)
	Errorf(format string, args ...interface{})

	// Log and terminate process (unrecoverable)
	Fatal(arg string)

	// Log with fmt.Printf-like formatting and terminate process (unrecoverable)
	Fatalf(format string, args ...interface{})

	// Set key/value context for further logging with the returned logger
	WithField(key string, value interface{}) *alog.Entry

	// Return a logger with the specified error set, to be included in a
	// subsequent normal logging call
	WithError(err error) *alog.Entry
}

var logg Logger = NewLogger("info")

// InitLogger resets the process-wide logger with the given level. Call it
// once, early, from main.
func InitLogger(level string) {
	logg = NewLogger(level)
}

func NewLogger(level string) Logger {
	alog.SetHandler(&LogHandler{Writer: os.Stdout})
	alog.SetLevelFromString(level)
	return alog.Log
}

func Debug(arg string) { logg.Debug(arg) }
func Info(arg string)  { logg.Info(arg) }
func Warn(arg string)  { logg.Warn(arg) }
func Error(arg string) { logg.Error(arg) }
func Fatal(arg string) { logg.Fatal(arg) }

func Debugf(format string, args ...interface{}) { logg.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logg.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logg.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logg.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { logg.Fatalf(format, args...) }

// With sets a key/value pair for a subsequent logging call.
func With(key string, value interface{}) *alog.Entry {
	return logg.WithField(key, value)
}
