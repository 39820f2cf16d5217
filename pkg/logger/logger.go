package logger

import (
	"github.com/labstack/gommon/log"
)

var std = log.New("order-sdk")

func init() {
	std.SetHeader("${time_rfc3339} ${level} ${prefix}")
	// quiet unless the host application opts in via Init
	std.SetLevel(log.ERROR)
}

// Init sets log verbosity for the given environment.
func Init(environment string) {
	if environment == "production" {
		std.SetLevel(log.INFO)
		return
	}
	std.SetLevel(log.DEBUG)
}

func Info(msg string, keyvals ...any) {
	if len(keyvals) == 0 {
		std.Info(msg)
		return
	}
	std.Infoj(toJSON(msg, keyvals))
}

func Error(msg string, err error) {
	entry := log.JSON{"message": msg}
	if err != nil {
		entry["error"] = err.Error()
	}
	std.Errorj(entry)
}

func Fatal(msg string, keyvals ...any) {
	std.Fatalj(toJSON(msg, keyvals))
}

func toJSON(msg string, keyvals []any) log.JSON {
	entry := log.JSON{"message": msg}
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		entry[key] = keyvals[i+1]
	}
	return entry
}
