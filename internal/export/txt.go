package export

import (
	"fmt"
	"os"
	"time"

	"widgetkit/internal/format"
)

// Record is one finished dialog.
type Record struct {
	Time   time.Time
	Demo   string
	Labels []string
}

// Line renders the record as a single tab-separated line.
func (r Record) Line() string {
	return fmt.Sprintf("%s\t%s\t%s\n", r.Time.Format("2006-01-02 15:04:05"), r.Demo, format.List(r.Labels))
}

// AppendTXT appends records to the text file at path, creating it and its
// directory if needed.
func AppendTXT(path string, records ...Record) error {
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create txt dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open txt file: %w", err)
	}
	defer f.Close()

	for _, r := range records {
		if _, err := f.WriteString(r.Line()); err != nil {
			return fmt.Errorf("write txt file: %w", err)
		}
	}
	return nil
}
