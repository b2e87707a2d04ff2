package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hrpulse/hrpulse/internal/hrdata"
)

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV serializes the KPI set as one row per indicator.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "indicateur", "valeur", "unité", "tendance", "classification", "analyse"}); err != nil {
		return err
	}
	for _, k := range report.KPIs {
		row := []string{
			k.ID,
			k.Name,
			k.Value,
			k.Unit,
			trendLabel(k),
			string(k.Category),
			k.Insight,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDemographicsCSV serializes the gender split per department. This
// replaces a legacy utility that fired the export as an import-time side
// effect; it now only runs when explicitly invoked.
func WriteDemographicsCSV(w io.Writer, employees []hrdata.Employee) error {
	type split struct{ women, men, other int }
	byDept := map[hrdata.Department]*split{}
	for i := range employees {
		e := &employees[i]
		s, ok := byDept[e.Department]
		if !ok {
			s = &split{}
			byDept[e.Department] = s
		}
		switch e.Gender {
		case "F":
			s.women++
		case "M":
			s.men++
		default:
			s.other++
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"département", "femmes", "hommes", "non renseigné", "total"}); err != nil {
		return err
	}
	for _, dept := range hrdata.Departments {
		s, ok := byDept[dept]
		if !ok {
			continue
		}
		total := s.women + s.men + s.other
		row := []string{
			string(dept),
			strconv.Itoa(s.women),
			strconv.Itoa(s.men),
			strconv.Itoa(s.other),
			strconv.Itoa(total),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
