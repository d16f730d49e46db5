package transport

import (
	"bufio"
	"io"
	"os"

	"github.com/juju/errors"
)

// StdinPath selects standard input as the dump source
const StdinPath = "-"

// maxLineLength bounds a single configuration line
const maxLineLength = 1024 * 1024

// FileSource reads a configuration dump from a local file or standard input
type FileSource struct {
	path  string
	stdin io.Reader
}

// NewFileSource creates a source for path; "-" reads standard input
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, stdin: os.Stdin}
}

// Lines returns every line of the dump without line terminators
func (fs *FileSource) Lines() ([]string, error) {
	if fs.path == StdinPath {
		lines, err := readLines(fs.stdin)
		if err != nil {
			return nil, errors.Annotate(err, "failed to read standard input")
		}
		logger.Debugf("read %d line(s) from standard input", len(lines))
		return lines, nil
	}

	file, err := os.Open(fs.path)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to open %s", fs.path)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to read %s", fs.path)
	}
	logger.Debugf("read %d line(s) from %s", len(lines), fs.path)
	return lines, nil
}

// Describe names the source for messages
func (fs *FileSource) Describe() string {
	if fs.path == StdinPath {
		return "standard input"
	}
	return fs.path
}

// Close is a no-op; files are closed after each read
func (fs *FileSource) Close() error {
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
