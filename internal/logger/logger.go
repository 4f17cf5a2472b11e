package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	blue   = "\x1b[34m"
	yellow = "\x1b[33m"
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	reset  = "\x1b[0m"
)

var levels = map[string]int{
	"DEBUG":   0,
	"INFO":    1,
	"WARNING": 2,
	"ERROR":   3,
}

var (
	mu       sync.Mutex
	out      io.Writer = os.Stdout
	minLevel           = levels["INFO"]
)

// SetOutput troca o destino dos logs (stdout por padrão).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetLevel define o nível mínimo; valores desconhecidos mantêm o atual.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	if n, ok := levels[normalize(level)]; ok {
		minLevel = n
	}
}

func normalize(level string) string {
	switch l := strings.ToUpper(strings.TrimSpace(level)); l {
	case "WARN":
		return "WARNING"
	case "ERR":
		return "ERROR"
	default:
		return l
	}
}

func prefix(level string) string {
	var color string
	switch level {
	case "DEBUG":
		color = blue
	case "INFO":
		color = green
	case "WARNING":
		color = yellow
	case "ERROR":
		color = red
	default:
		color = reset
	}
	return fmt.Sprintf("[%s%s%s] - %s - ", color, level, reset, time.Now().Format("2006-01-02T15:04:05"))
}

func write(level, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if levels[level] < minLevel {
		return
	}
	fmt.Fprintf(out, "%s%s\n", prefix(level), fmt.Sprintf(format, a...))
}

func Debugf(format string, a ...interface{}) { write("DEBUG", format, a...) }

func Infof(format string, a ...interface{}) { write("INFO", format, a...) }

func Warnf(format string, a ...interface{}) { write("WARNING", format, a...) }

func Errorf(format string, a ...interface{}) { write("ERROR", format, a...) }

func Fatalf(format string, a ...interface{}) {
	Errorf(format, a...)
	os.Exit(1)
}
