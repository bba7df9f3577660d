package testutil

import (
	"context"
	"fmt"
)

// Logger records log lines for inspection.
type Logger struct {
	Logged []string
}

func (lgr *Logger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.Logged = append(lgr.Logged, fmt.Sprintf("info %s %v", msg, kv))
}

func (lgr *Logger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.Logged = append(lgr.Logged, fmt.Sprintf("error %s: %v %v", msg, err, kv))
}

func (lgr *Logger) WithFields(ctx context.Context, kv ...any) context.Context {
	return ctx
}
