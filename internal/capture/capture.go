package capture

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the relay frames stored in the capture file at path, one per
// line, skipping blank lines and lines starting with '#'. When maxFrames is
// positive only the last maxFrames frames are returned.
func Read(path string, maxFrames int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxFrames <= 0 {
		var frames []string
		for scanner.Scan() {
			if line, ok := frame(scanner.Text()); ok {
				frames = append(frames, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read capture: %w", err)
		}
		return frames, nil
	}

	ring := make([]string, maxFrames)
	count := 0
	idx := 0
	for scanner.Scan() {
		line, ok := frame(scanner.Text())
		if !ok {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxFrames
		if count < maxFrames {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	frames := make([]string, count)
	if count == maxFrames {
		for i := 0; i < count; i++ {
			frames[i] = ring[(idx+i)%maxFrames]
		}
	} else {
		copy(frames, ring[:count])
	}
	return frames, nil
}

func frame(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	return trimmed, true
}
