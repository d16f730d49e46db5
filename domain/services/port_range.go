package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadPortRange is matched by every PortRangeError
var ErrBadPortRange = errors.New("bad port range")

const (
	// maxPortNumber bounds either endpoint of a range
	maxPortNumber = 65535
	// maxRangeSpan bounds the number of ports one range may produce
	maxRangeSpan = 4096
)

var (
	rangeStartRegex = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
	rangeEndRegex   = regexp.MustCompile(`^([A-Za-z]*)(\d+)$`)
)

// PortRangeError reports a range token that cannot be expanded
type PortRangeError struct {
	Token  string
	Reason string
}

func (e *PortRangeError) Error() string {
	return fmt.Sprintf("bad port range %q: %s", e.Token, e.Reason)
}

func (e *PortRangeError) Unwrap() error {
	return ErrBadPortRange
}

// ExpandPorts turns a port list such as "A1,A3-A5" into individual ports.
// Tokens keep their left-to-right order and ranges expand ascending.
// A range whose start is greater than its end contributes no ports.
func ExpandPorts(list string) ([]string, error) {
	ports := make([]string, 0)
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.Contains(token, "-") {
			ports = append(ports, token)
			continue
		}
		expanded, err := expandRange(token)
		if err != nil {
			return nil, err
		}
		ports = append(ports, expanded...)
	}
	return ports, nil
}

func expandRange(token string) ([]string, error) {
	bounds := strings.Split(token, "-")
	if len(bounds) != 2 {
		return nil, &PortRangeError{Token: token, Reason: fmt.Sprintf("expected 2 endpoints, found %d", len(bounds))}
	}
	start := rangeStartRegex.FindStringSubmatch(strings.TrimSpace(bounds[0]))
	if start == nil {
		return nil, &PortRangeError{Token: token, Reason: "start is not <letters><digits>"}
	}
	end := rangeEndRegex.FindStringSubmatch(strings.TrimSpace(bounds[1]))
	if end == nil {
		return nil, &PortRangeError{Token: token, Reason: "end is not numeric"}
	}
	prefix := start[1]
	if end[1] != "" && end[1] != prefix {
		return nil, &PortRangeError{Token: token, Reason: fmt.Sprintf("prefixes %s and %s differ", prefix, end[1])}
	}

	first, err := strconv.Atoi(start[2])
	if err != nil {
		return nil, &PortRangeError{Token: token, Reason: "start out of range"}
	}
	last, err := strconv.Atoi(end[2])
	if err != nil {
		return nil, &PortRangeError{Token: token, Reason: "end out of range"}
	}
	if first > maxPortNumber || last > maxPortNumber {
		return nil, &PortRangeError{Token: token, Reason: "range too large"}
	}
	if first > last {
		return []string{}, nil
	}
	if last-first >= maxRangeSpan {
		return nil, &PortRangeError{Token: token, Reason: "range too large"}
	}

	ports := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		ports = append(ports, prefix+strconv.Itoa(i))
	}
	return ports, nil
}
