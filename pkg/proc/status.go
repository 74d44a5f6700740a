package proc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TracerPID returns the pid of the process tracing this one, as reported
// by /proc/self/status. 0 means no tracer is attached.
func TracerPID() (int, error) {
	statusBytes, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0, err
	}
	return parseTracerPID(bytes.NewReader(statusBytes))
}

func parseTracerPID(reader io.Reader) (int, error) {
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()

		name, value, found := strings.Cut(line, ":")
		if !found {
			return 0, fmt.Errorf("/proc/self/status: invalid line: %s", line)
		}
		if name != "TracerPid" {
			continue
		}

		pid, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("/proc/self/status: invalid TracerPid: %w", err)
		}
		return pid, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("/proc/self/status: TracerPid not found")
}
