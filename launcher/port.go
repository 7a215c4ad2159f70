package launcher

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePort extracts the port from the bridge confirmation line. The port is
// the trailing integer, so a bare "25333" line works as well.
func ParsePort(line string) (int, error) {
	line = strings.TrimSpace(line)
	start := len(line)
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}
	if start == len(line) {
		return 0, fmt.Errorf("%w: %q", ErrNoPort, line)
	}
	port, err := strconv.Atoi(line[start:])
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrNoPort, line)
	}
	return port, nil
}
