package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/tally/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Operation(op string) slog.Attr {
	const operationKey = "op"
	return slog.String(operationKey, op)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Interval(interval time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, interval)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func CounterID(id int64) slog.Attr {
	const counterIDKey = "counter_id"
	return slog.Int64(counterIDKey, id)
}

func CauseName(cause string) slog.Attr {
	const causeKey = "cause"
	return slog.String(causeKey, cause)
}

func State(state string) slog.Attr {
	const stateKey = "state"
	return slog.String(stateKey, state)
}

func BaseURL(url string) slog.Attr {
	const baseURLKey = "base_url"
	return slog.String(baseURLKey, url)
}
