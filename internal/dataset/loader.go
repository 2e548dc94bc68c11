package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/types"
)

// patientColumns maps header substrings to fields; first matching rule wins.
var patientColumns = []struct {
	field string
	match func(h string) bool
}{
	{"id", func(h string) bool {
		return h == "id" || strings.Contains(h, "medical id") || strings.Contains(h, "patient id") || strings.Contains(h, "medical_id")
	}},
	{"emergency", func(h string) bool { return strings.Contains(h, "emergency") }},
	{"name", func(h string) bool { return strings.Contains(h, "name") }},
	{"dob", func(h string) bool { return h == "dob" || strings.Contains(h, "birth") }},
	{"gender", func(h string) bool { return strings.Contains(h, "gender") || h == "sex" }},
	{"phone", func(h string) bool { return strings.Contains(h, "phone") || strings.Contains(h, "mobile") }},
	{"allergies", func(h string) bool { return strings.Contains(h, "allerg") }},
	{"medications", func(h string) bool { return strings.Contains(h, "medication") }},
	{"conditions", func(h string) bool { return strings.Contains(h, "condition") || strings.Contains(h, "history") }},
	{"last_visit", func(h string) bool { return strings.Contains(h, "visit") }},
	{"policy", func(h string) bool { return strings.Contains(h, "policy") }},
	{"insurance", func(h string) bool { return strings.Contains(h, "insurance") || strings.Contains(h, "provider") }},
	{"physician", func(h string) bool { return strings.Contains(h, "physician") || strings.Contains(h, "doctor") }},
}

// LoadPatients reads a patient directory from the first sheet of an xlsx file.
func LoadPatients(path string, log *logger.Logger) ([]types.Patient, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return readPatients(f, log.Component("dataset.patients"))
}

func readPatients(f *excelize.File, log *logger.Logger) ([]types.Patient, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		for _, c := range patientColumns {
			if c.match(l) {
				if _, taken := idx[c.field]; !taken {
					idx[c.field] = i
				}
				break
			}
		}
	}
	if _, ok := idx["id"]; !ok {
		return nil, fmt.Errorf("no patient id column in header %v", rows[0])
	}
	log.WithField("columns", idx).Debug("detected patient columns")

	var out []types.Patient
	skipped := 0
	for _, r := range rows[1:] {
		cell := func(field string) string {
			i, ok := idx[field]
			if !ok || i >= len(r) {
				return ""
			}
			return strings.TrimSpace(r[i])
		}
		p := types.Patient{
			ID:               cell("id"),
			Name:             cell("name"),
			DOB:              cell("dob"),
			Gender:           cell("gender"),
			Phone:            cell("phone"),
			Allergies:        splitList(cell("allergies")),
			Medications:      splitList(cell("medications")),
			Conditions:       splitList(cell("conditions")),
			LastVisit:        cell("last_visit"),
			PrimaryPhysician: cell("physician"),
			Insurance: types.Insurance{
				Provider:     cell("insurance"),
				PolicyNumber: cell("policy"),
			},
			EmergencyContact: types.EmergencyContact{Name: cell("emergency")},
		}
		if p.ID == "" {
			skipped++
			continue
		}
		out = append(out, p)
	}
	log.WithField("patients", len(out)).WithField("skipped", skipped).Info("patient directory loaded")
	return out, nil
}

// splitList accepts "a; b" or "a, b".
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
