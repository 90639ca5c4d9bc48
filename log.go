package transduce

import "log/slog"

// Logger defines an interface for logging at different severity levels.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

type loggedStage[In, Out any] struct {
	stage Stage[In, Out]
	log   Logger
	name  string
}

// Logged wraps stage so that every step and flush result is logged: emitted
// and skipped values at debug level, termination at info level. The wrapped
// stage behaves unchanged otherwise.
func Logged[In, Out any](stage Stage[In, Out], log Logger, name string) Stage[In, Out] {
	return &loggedStage[In, Out]{stage: stage, log: log, name: name}
}

// LoggedSlog wraps stage using the default slog logger.
func LoggedSlog[In, Out any](stage Stage[In, Out], name string) Stage[In, Out] {
	return Logged(stage, slog.Default(), name)
}

func (s *loggedStage[In, Out]) Step(val In) Signal[Out] {
	sig := s.stage.Step(val)
	s.observe("TRANSDUCE: Step", sig)
	return sig
}

func (s *loggedStage[In, Out]) Flush() Signal[Out] {
	sig := s.stage.Flush()
	s.observe("TRANSDUCE: Flush", sig)
	return sig
}

func (s *loggedStage[In, Out]) observe(msg string, sig Signal[Out]) {
	if v, ok := sig.Value(); ok {
		s.log.Debug(msg, "stage", s.name, "result", "emit", "value", v)
		return
	}
	if sig.Terminated() {
		s.log.Info(msg, "stage", s.name, "result", "terminate")
		return
	}
	s.log.Debug(msg, "stage", s.name, "result", "skip")
}
