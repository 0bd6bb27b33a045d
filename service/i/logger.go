package i

// Logger is the leveled logger every component receives.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
	Debug(string)
}
