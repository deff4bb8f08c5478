package endpoint

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/carbocation/pfx"
)

var timepointPattern = regexp.MustCompile(`^time_(\d+)$`)

type timepointColumn struct {
	Name      string
	Timepoint int
	Index     int
}

// Load reads the CSV at path and returns one Sample per row together with the
// name of the last-timepoint column. A missing file is fatal for the caller
// and the returned error names the path.
func Load(path string) ([]Sample, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", pfx.Err(err)
	}
	defer f.Close()

	delim := DetermineDelimiter(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", pfx.Err(err)
	}

	return LoadFromReader(f, delim)
}

// LoadFromReader parses CSV-formatted input with the given field delimiter.
// Split out from Load so tests can feed string readers.
func LoadFromReader(r io.Reader, delim rune) ([]Sample, string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, "", fmt.Errorf("input is empty: no header row")
	} else if err != nil {
		return nil, "", err
	}

	fileCol, groupCol, err := requiredColumns(header)
	if err != nil {
		return nil, "", err
	}

	timeCols, err := timepointColumns(header)
	if err != nil {
		return nil, "", err
	}

	// The column with the numerically largest suffix is the endpoint. Numeric
	// sort, not lexical: time_9 must sort before time_10.
	last := timeCols[len(timeCols)-1]

	samples := make([]Sample, 0)
	for i := 1; ; i++ {
		line, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, "", err
		}

		value, err := strconv.ParseFloat(line[last.Index], 64)
		if err != nil {
			return nil, "", fmt.Errorf("row %d: column %s: %v", i, last.Name, err)
		}

		samples = append(samples, Sample{
			File:      line[fileCol],
			Group:     line[groupCol],
			LastValue: value,
		})
	}

	return samples, last.Name, nil
}

// LoadSeries reads the CSV at path and returns every timepoint for every row,
// for the supplementary time-course chart.
func LoadSeries(path string) ([]SampleSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	delim := DetermineDelimiter(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	return SeriesFromReader(f, delim)
}

// SeriesFromReader parses CSV-formatted input, keeping all time_* columns.
func SeriesFromReader(r io.Reader, delim rune) ([]SampleSeries, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty: no header row")
	} else if err != nil {
		return nil, err
	}

	fileCol, groupCol, err := requiredColumns(header)
	if err != nil {
		return nil, err
	}

	timeCols, err := timepointColumns(header)
	if err != nil {
		return nil, err
	}

	series := make([]SampleSeries, 0)
	for i := 1; ; i++ {
		line, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		entry := SampleSeries{
			File:   line[fileCol],
			Group:  line[groupCol],
			Values: make(map[int]float64, len(timeCols)),
		}

		for _, col := range timeCols {
			value, err := strconv.ParseFloat(line[col.Index], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %s: %v", i, col.Name, err)
			}
			entry.Values[col.Timepoint] = value
		}

		series = append(series, entry)
	}

	return series, nil
}

func requiredColumns(header []string) (fileCol, groupCol int, err error) {
	fileCol, groupCol = -1, -1
	for i, name := range header {
		switch name {
		case "file":
			fileCol = i
		case "group":
			groupCol = i
		}
	}

	if fileCol < 0 {
		return 0, 0, fmt.Errorf("required column 'file' not found in header")
	}
	if groupCol < 0 {
		return 0, 0, fmt.Errorf("required column 'group' not found in header")
	}

	return fileCol, groupCol, nil
}

func timepointColumns(header []string) ([]timepointColumn, error) {
	cols := make([]timepointColumn, 0, len(header))
	for i, name := range header {
		m := timepointPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		suffix, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("column %s: %v", name, err)
		}

		cols = append(cols, timepointColumn{Name: name, Timepoint: suffix, Index: i})
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("no time_* columns found in header")
	}

	sort.Slice(cols, func(i, j int) bool { return cols[i].Timepoint < cols[j].Timepoint })

	return cols, nil
}
