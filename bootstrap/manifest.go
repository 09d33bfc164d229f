package bootstrap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Pin is one manifest entry: a pack pinned to an exact version.
type Pin struct {
	Name    string
	Version string
}

// ArchiveName is the file name the pinned pack must have in the local cache.
func (p Pin) ArchiveName() string {
	return p.Name + "-" + p.Version + ".pack"
}

// ReadManifest parses the pinned pack manifest: one "name version" pair per
// line, blank lines and '#' comments ignored.
func ReadManifest(path string) ([]Pin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pins []Pin
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: want \"name version\", got %q", path, line, text)
		}
		pins = append(pins, Pin{Name: fields[0], Version: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pins, nil
}
