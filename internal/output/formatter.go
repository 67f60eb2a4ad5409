package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// Formatter renders a batch of reports.
type Formatter interface {
	Name() string
	Format(batch *Batch) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(batch *Batch) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(batch *Batch) ([]byte, error) { return f.F(batch) }

var registry = map[string]Formatter{}

func register(f Formatter) {
	registry[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{})
	register(YAMLFormatter{})
	register(CSVFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter called name, or nil.
func GetFormatterByName(name string) Formatter {
	return registry[name]
}

// FormatterNames lists the registered formatter names, sorted.
func FormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write formats batch with the named formatter and writes it to w.
func Write(w io.Writer, batch *Batch, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := f.Format(batch)
	if err != nil {
		return fmt.Errorf("failed to format %s output: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted writes the formatted batch to a timestamped file in the
// working directory and returns its name.
func WriteFormatted(f Formatter, batch *Batch, ext string) (string, error) {
	data, err := f.Format(batch)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("eisim_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
