package ports

// LineSource defines the port supplying the raw lines of a configuration dump
type LineSource interface {
	Lines() ([]string, error)
	Describe() string
}
