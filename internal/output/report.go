package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/projection-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes report in the named format to a file in dir and returns its path.
// The format "all" writes every file-oriented format.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console", "csv", "schedule-csv", "growth-csv", "history-csv", "html", "json", "pdf"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// Render writes report in the named format to w.
func Render(w io.Writer, report *domain.ProjectionReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func unsupported(format string) error {
	// enrich error with available formatters and aliases
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes plan to filename as YAML.
func SaveConfiguration(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
