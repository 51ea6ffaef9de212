package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
)

var errNoHeader = errors.New("no header row")

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// frame holds the string columns of one CSV file keyed by header name.
type frame struct {
	file string
	rows int
	cols map[string][]string
}

func readFrame(ctx context.Context, path string, required ...string) (*frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadErr(path, "cancelled", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, "open file", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, loadErr(path, "parse csv", err)
	}
	if len(records) == 0 {
		return nil, loadErr(path, "parse csv", errNoHeader)
	}

	present := make(map[string]bool, len(records[0]))
	for _, name := range records[0] {
		present[strings.TrimSpace(name)] = true
	}

	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, loadErr(path, "missing columns "+strings.Join(missing, ", "), nil)
	}

	fr := &frame{file: path, cols: make(map[string][]string, len(required))}
	// gota refuses a header without rows; that is a valid empty table.
	if len(records) == 1 {
		return fr, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, loadErr(path, "parse csv", df.Err)
	}

	fr.rows = df.Nrow()
	for _, name := range df.Names() {
		key := strings.TrimSpace(name)
		if !contains(required, key) {
			continue
		}
		if _, seen := fr.cols[key]; seen {
			continue
		}
		fr.cols[key] = df.Col(name).Records()
	}
	return fr, nil
}

func (f *frame) value(col string, row int) string {
	return strings.TrimSpace(f.cols[col][row])
}

func (f *frame) decimal(col string, row int) (decimal.Decimal, error) {
	raw := f.value(col, row)
	if isNull(raw) {
		return decimal.Zero, rowErr(f.file, row, "%s is empty", col)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, rowErr(f.file, row, "invalid %s %q", col, raw)
	}
	return d, nil
}

func (f *frame) time(col string, row int) (time.Time, error) {
	raw := f.value(col, row)
	if isNull(raw) {
		return time.Time{}, rowErr(f.file, row, "%s is empty", col)
	}
	t, ok := parseTime(raw)
	if !ok {
		return time.Time{}, rowErr(f.file, row, "invalid %s %q", col, raw)
	}
	return t, nil
}

func (f *frame) nullableTime(col string, row int) (*time.Time, error) {
	raw := f.value(col, row)
	if isNull(raw) {
		return nil, nil
	}
	t, ok := parseTime(raw)
	if !ok {
		return nil, rowErr(f.file, row, "invalid %s %q", col, raw)
	}
	return &t, nil
}

func parseTime(raw string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isNull matches the tokens gota and pandas exports use for missing values.
func isNull(raw string) bool {
	switch raw {
	case "", "NA", "NaN", "<nil>":
		return true
	}
	return false
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
