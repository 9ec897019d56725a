package yamlio

// DebugLogger receives the engine's low-stakes diagnostic output: keys
// a `strict=false` parse tolerated and skipped because the schema
// didn't recognize them. The default implementation discards every
// message, matching the teacher's "silent by default" posture; a
// caller that wants a trail installs its own via SetLogger.
type DebugLogger interface {
	Debugf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{}) {}

var logger DebugLogger = discardLogger{}

// SetLogger installs logger as the destination for every subsequent
// strict=false diagnostic. Passing nil restores the default (discard).
func SetLogger(l DebugLogger) {
	if l == nil {
		logger = discardLogger{}
		return
	}
	logger = l
}

// LogSkippedKeys reports, through the installed DebugLogger, that keys
// were present in a doctype's data section but not recognized by the
// schema and were skipped rather than rejected (spec §4.1
// `skip_unknown`, used only when `strict=false`).
func LogSkippedKeys(doctype string, keys []string) {
	if len(keys) == 0 {
		return
	}
	logger.Debugf("%s: skipping unknown key(s): %v", doctype, keys)
}

// Warnf routes a one-off diagnostic (outside the unknown-key-skip path,
// e.g. a lossy lowering decision) through the installed DebugLogger
// instead of a direct logging dependency.
func Warnf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
