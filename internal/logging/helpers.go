package logging

import "log/slog"

// The exploration pipeline passes its logger down through plain struct
// fields, and tests frequently leave it nil. These helpers make a nil
// logger mean "silent" instead of a panic, so providers and the runner
// can log unconditionally.

// Info records a progress event, such as a fetch starting or a
// snapshot landing on disk.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn records a recoverable oddity the run continues past.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error records a failure. A non-nil err is appended under the "error"
// key so call sites do not repeat the attribute.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
