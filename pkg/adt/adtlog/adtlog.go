package adtlog

import (
	"sync/atomic"

	"github.com/ib-77/adt/pkg/adt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the library logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("adt"))
}

// L returns the library logger.
func L() *zap.Logger {
	return logger.Load()
}

type optionMarshaler[T any] adt.Option[T]

func (m optionMarshaler[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	v, ok := adt.Option[T](m).Get()
	if !ok {
		enc.AddString("tag", "None")
		return nil
	}
	enc.AddString("tag", "Some")
	return enc.AddReflected("value", v)
}

type resultMarshaler[T, E any] adt.Result[T, E]

func (m resultMarshaler[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	r := adt.Result[T, E](m)
	if v, ok := r.Get(); ok {
		enc.AddString("tag", "Ok")
		return enc.AddReflected("value", v)
	}

	enc.AddString("tag", "Err")
	e, _ := r.Err()
	if err, isErr := any(e).(error); isErr {
		enc.AddString("error", err.Error())
		return nil
	}
	return enc.AddReflected("error", e)
}

// Option encodes o as {"tag": "Some", "value": ...} or {"tag": "None"}.
func Option[T any](key string, o adt.Option[T]) zap.Field {
	return zap.Object(key, optionMarshaler[T](o))
}

// Result encodes r as {"tag": "Ok", "value": ...} or {"tag": "Err", "error": ...}.
func Result[T, E any](key string, r adt.Result[T, E]) zap.Field {
	return zap.Object(key, resultMarshaler[T, E](r))
}
