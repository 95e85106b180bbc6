package core

// Logger is the app-wide logging contract; services depend on it instead of a
// concrete sink so tests can swap it out.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
