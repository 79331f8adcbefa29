package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-event-checkin/internal/domain"
	"github.com/xuri/excelize/v2"
)

// requiredColumns is the bulk-import header contract. Column order in the
// sheet does not matter; the header row names the fields.
var requiredColumns = []string{
	"name", "company", "department", "mobile", "group",
	"family_employee", "family_infant", "family_child", "family_adult", "family_elderly",
}

// ParseRegistrants reads the first sheet of an .xlsx stream into import
// rows. Header problems and unreadable files are reported as
// domain.ErrBadRequest; per-row field validation is left to the caller so
// the whole file is checked before anything is inserted.
func ParseRegistrants(r io.Reader) ([]domain.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to process the uploaded file: %v: %w", err, domain.ErrBadRequest)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %w", domain.ErrBadRequest)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v: %w", sheets[0], err, domain.ErrBadRequest)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: %w", sheets[0], domain.ErrBadRequest)
	}

	colIdx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var out []domain.ImportRow
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		imp, err := parseRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(out)+2, err)
		}
		out = append(out, *imp)
	}
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s: %w", strings.Join(missing, ", "), domain.ErrBadRequest)
	}
	return idx, nil
}

func parseRow(row []string, colIdx map[string]int) (*domain.ImportRow, error) {
	familyEmployee, err := cellInt(row, colIdx, "family_employee")
	if err != nil {
		return nil, err
	}
	familyInfant, err := cellInt(row, colIdx, "family_infant")
	if err != nil {
		return nil, err
	}
	familyChild, err := cellInt(row, colIdx, "family_child")
	if err != nil {
		return nil, err
	}
	familyAdult, err := cellInt(row, colIdx, "family_adult")
	if err != nil {
		return nil, err
	}
	familyElderly, err := cellInt(row, colIdx, "family_elderly")
	if err != nil {
		return nil, err
	}

	imp := &domain.ImportRow{
		Name:           cell(row, colIdx, "name"),
		Mobile:         cell(row, colIdx, "mobile"),
		Department:     cell(row, colIdx, "department"),
		Company:        cell(row, colIdx, "company"),
		FamilyEmployee: familyEmployee,
		FamilyInfant:   familyInfant,
		FamilyChild:    familyChild,
		FamilyAdult:    familyAdult,
		FamilyElderly:  familyElderly,
	}
	if g := cell(row, colIdx, "group"); g != "" {
		imp.Group = &g
	}
	return imp, nil
}

func cell(row []string, colIdx map[string]int, name string) string {
	i := colIdx[name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellInt parses an optional integer cell; an empty cell means "not
// reported" and comes back nil.
func cellInt(row []string, colIdx map[string]int, name string) (*int, error) {
	s := cell(row, colIdx, name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("column %q: %q is not an integer: %w", name, s, domain.ErrBadRequest)
	}
	return &n, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
