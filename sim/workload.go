// Loads the workload definition: one process per line, five fields in fixed
// order (name, arrival, total CPU burst, IO burst duration, IO burst rate)
// separated by a single delimiter character.

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// workloadFields is the fixed per-line field count of the workload format.
const workloadFields = 5

// LoadWorkload reads process definitions from the file at path.
// Specs are returned in file order, which is not required to match
// arrival-time order.
func LoadWorkload(path string, delimiter rune) ([]ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()
	return ParseWorkload(f, delimiter)
}

// ParseWorkload parses workload lines from r. A line with the wrong field
// count, a non-numeric field, or a negative value is a fatal parse error.
func ParseWorkload(r io.Reader, delimiter rune) ([]ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = workloadFields
	reader.TrimLeadingSpace = true

	var specs []ProcessSpec
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("workload line %d: %w", line, err)
		}

		spec := ProcessSpec{Name: record[0]}
		fields := []struct {
			label string
			dst   *int64
		}{
			{"arrival time", &spec.ArrivalTime},
			{"total CPU burst", &spec.TotalCPUBurst},
			{"IO burst duration", &spec.IOBurstDuration},
			{"IO burst rate", &spec.IOBurstRate},
		}
		for i, f := range fields {
			v, err := strconv.ParseInt(record[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("workload line %d: invalid %s %q", line, f.label, record[i+1])
			}
			if v < 0 {
				return nil, fmt.Errorf("workload line %d: negative %s %d", line, f.label, v)
			}
			*f.dst = v
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
