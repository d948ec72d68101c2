package calculation

// Logger is the logging surface used by the projection engines and the
// life-stage simulator. *zap.SugaredLogger satisfies it; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// orNop returns l, or NopLogger when l is nil.
func orNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
