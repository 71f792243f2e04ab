package requests

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a workload file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatFromPath guesses the encoding from the file extension, defaulting to yaml.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatYAML
	}
}

// LoadFile reads and normalizes a workload file.
func LoadFile(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workload file: %w", err)
	}
	defer f.Close()

	request, err := Read(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return request, nil
}

// Read decodes a workload in the given format and normalizes it.
func Read(r io.Reader, format Format) (*ScheduleRequests, error) {
	var request ScheduleRequests
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&request); err != nil {
			return nil, fmt.Errorf("failed to parse json workload: %w", err)
		}
	case FormatCSV:
		jobs, err := readCSV(r)
		if err != nil {
			return nil, err
		}
		request.Jobs = jobs
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &request); err != nil {
			return nil, fmt.Errorf("failed to parse yaml workload: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported workload format %q", format)
	}

	if err := request.Normalize(); err != nil {
		return nil, err
	}
	return &request, nil
}

// readCSV reads rows of "id,burst,arrival[,priority]". Lines starting with # are skipped.
func readCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv workload: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("csv line %d: expected 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("csv line %d field %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}
		job := Job{ProcessId: values[0], BurstTime: values[1], ArrivalTime: values[2]}
		if len(values) == 4 {
			job.Priority = values[3]
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Encode writes the request as yaml.
func (r *ScheduleRequests) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return encoder.Close()
}
