package template

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed template line.
type Entry struct {
	Index int
	Name  string
}

var linePattern = regexp.MustCompile(`^(\d+):\s+(.*)$`)

// Width returns the number of digits indices are padded to for count
// entries: ceil(log10(count)), but never less than one.
func Width(count int) int {
	width := 1
	for n := count - 1; n >= 10; n /= 10 {
		width++
	}
	return width
}

// Write dumps the snapshot to w, one zero-padded "index: path" line per
// item.
func Write(w io.Writer, s *Snapshot) error {
	bw := bufio.NewWriter(w)
	width := Width(len(s.Items))

	for i, item := range s.Items {
		if _, err := fmt.Fprintf(bw, "%0*d: %s\n", width, i, s.rel(item)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the template file into the snapshot root and returns
// its path.
func WriteFile(s *Snapshot) (string, error) {
	path := s.Path()

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := Write(f, s); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Debugf("wrote %d entries to %s", len(s.Items), path)
	return path, nil
}

// Read parses template lines. Lines are trimmed first; lines that are not
// of the form "<digits>:<whitespace><name>" are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Index: index, Name: m[2]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadFile parses the template file at path. A missing file means there are
// no edits and yields nil without error.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
