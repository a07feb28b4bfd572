package uevloop

import (
	"fmt"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// logifaceLogger adapts a github.com/joeycumines/logiface Logger backed
// by the stumpy JSON writer to Logger. kv pairs are flattened with
// fmt.Sprint into string fields; stumpy's own event construction still
// happens off the engine's hot path, on the already-rare error/warning
// reporting calls Logger is used for.
type logifaceLogger struct {
	l *logiface.Logger[*stumpy.Event]
}

// NewLogifaceLogger builds a Logger backed by stumpy, configured with
// the given stumpy options (WithWriter, WithTimeField, WithLevelField).
func NewLogifaceLogger(opts ...stumpy.Option) Logger {
	return &logifaceLogger{
		l: stumpy.L.New(stumpy.L.WithStumpy(opts...)),
	}
}

func (a *logifaceLogger) Debug(msg string, kv ...any) { a.log(a.l.Debug(), msg, kv...) }
func (a *logifaceLogger) Info(msg string, kv ...any)  { a.log(a.l.Info(), msg, kv...) }
func (a *logifaceLogger) Warn(msg string, kv ...any)  { a.log(a.l.Warning(), msg, kv...) }
func (a *logifaceLogger) Error(msg string, kv ...any) { a.log(a.l.Err(), msg, kv...) }

func (a *logifaceLogger) log(b *logiface.Builder[*stumpy.Event], msg string, kv ...any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b = b.Str(key, fmt.Sprint(kv[i+1]))
	}
	b.Log(msg)
}
