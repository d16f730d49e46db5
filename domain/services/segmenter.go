package services

import (
	"strings"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// Segmenter splits a configuration dump into the blocks closed by a terminator line
type Segmenter struct {
	terminator    string
	noisePrefixes []string
}

// NewSegmenter creates a segmenter for the given terminator and noise prefixes
func NewSegmenter(terminator string, noisePrefixes []string) *Segmenter {
	return &Segmenter{
		terminator:    terminator,
		noisePrefixes: noisePrefixes,
	}
}

// Segment returns every terminated block in input order, plus the number of
// content lines left open at the end of input. Those lines are discarded.
func (s *Segmenter) Segment(lines []string) ([]entities.RawBlock, int) {
	blocks := make([]entities.RawBlock, 0)
	current := make([]string, 0)
	firstLine := 1

	for idx, line := range lines {
		lineNum := idx + 1
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == s.terminator:
			blocks = append(blocks, entities.RawBlock{
				Text:      strings.Join(current, " "),
				FirstLine: firstLine,
				LastLine:  lineNum,
			})
			current = current[:0]
			firstLine = lineNum + 1
		case trimmed == "" || s.isNoise(trimmed):
			continue
		default:
			current = append(current, trimmed)
		}
	}
	return blocks, len(current)
}

func (s *Segmenter) isNoise(line string) bool {
	for _, prefix := range s.noisePrefixes {
		if prefix != "" && strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
