package report

import (
	"io"
	"strconv"
	"time"

	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/redact"
)

type loadRow struct {
	id, origin, detail string
	duration           time.Duration
	repairs            int
}

// loadsSection shows where each scheme's data came from.
type loadsSection struct {
	rows []loadRow
}

var _ Section = (*loadsSection)(nil)

func (s *loadsSection) Name() string        { return "loads" }
func (s *loadsSection) Description() string { return "Data sources" }

func (s *loadsSection) Analyze(d *dashboard.Dashboard) error {
	s.rows = s.rows[:0]
	for _, r := range d.Loads {
		row := loadRow{
			id:       r.ID,
			origin:   string(r.Origin),
			duration: r.Duration,
			repairs:  len(r.Repairs),
		}
		if r.Err != nil {
			row.detail = redact.String(r.Err.Error())
		}
		s.rows = append(s.rows, row)
	}
	return nil
}

func (s *loadsSection) Render(w io.Writer) error {
	heading(w, s.Description())
	tbl := NewTable(
		Column{Header: "Scheme"},
		Column{Header: "Source", Color: ColorOrigin},
		Column{Header: "Time", Align: AlignRight},
		Column{Header: "Repairs", Align: AlignRight},
		Column{Header: "Error"},
	)
	for _, r := range s.rows {
		repairs := "-"
		if r.repairs > 0 {
			repairs = strconv.Itoa(r.repairs)
		}
		tbl.AddRow(r.id, r.origin, r.duration.Round(time.Millisecond).String(), repairs, r.detail)
	}
	return tbl.Render(w)
}
