package enginestats

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aquasecurity/table"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

// Row is one engine group of a Report.
type Row struct {
	Family      renderingengine.Family `yaml:"family"`
	Vendor      renderingengine.Brand  `yaml:"vendor"`
	Version     string                 `yaml:"version"`
	FullVersion string                 `yaml:"full_version,omitempty"`
	Count       int                    `yaml:"count"`
	Share       float64                `yaml:"share"`
	Hash        int32                  `yaml:"hash"`
}

// Report is a point-in-time view of aggregated engine counts.
type Report struct {
	ID          string    `yaml:"id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Total       int       `yaml:"total"`
	Rows        []Row     `yaml:"rows"`
}

func newRow(e renderingengine.RenderingEngine, count int) Row {
	return Row{
		Family:      e.Family(),
		Vendor:      e.Vendor(),
		Version:     e.Version(),
		FullVersion: e.FullVersion(),
		Count:       count,
		Hash:        e.Hash(),
	}
}

func newReport(rows []Row, total int, at time.Time) Report {
	for i := range rows {
		if total > 0 {
			rows[i].Share = float64(rows[i].Count) / float64(total)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		si, sj := rows[i].Engine().String(), rows[j].Engine().String()
		if si != sj {
			return si < sj
		}
		return rows[i].Vendor < rows[j].Vendor
	})

	return Report{
		ID:          uuid.New().String(),
		GeneratedAt: at.UTC(),
		Total:       total,
		Rows:        rows,
	}
}

// Engine returns the grouping key of the row.
func (r Row) Engine() renderingengine.RenderingEngine {
	return renderingengine.New(r.Vendor, r.Family, r.Version, r.FullVersion)
}

// ByFamily sums row counts per engine family.
func (r Report) ByFamily() map[renderingengine.Family]int {
	out := make(map[renderingengine.Family]int)
	for _, row := range r.Rows {
		out[row.Family] += row.Count
	}
	return out
}

// WriteYAML encodes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// WriteTable renders the report as a text table.
func (r Report) WriteTable(w io.Writer) {
	tbl := table.New(w)
	tbl.SetHeaders("Engine", "Vendor", "Version", "Count", "Share")
	for _, row := range r.Rows {
		version := row.Version
		if row.FullVersion != "" {
			version = row.FullVersion
		}
		tbl.AddRow(
			row.Family.Label(),
			row.Vendor.Label(),
			version,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.1f%%", row.Share*100),
		)
	}
	tbl.AddFooters("Total", "", "", fmt.Sprintf("%d", r.Total), "")
	tbl.Render()
}
