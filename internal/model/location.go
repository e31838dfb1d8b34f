package model

import "fmt"

// Location identifies where a directive appeared in its source.
type Location struct {
	File string
	Line int // 1-based, 0 = unknown
}

// IsValid reports whether the location points at a real line.
func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "<input>"
	}
	if l.Line <= 0 {
		return file
	}
	return fmt.Sprintf("%s:%d", file, l.Line)
}
