// Package export renders event rosters as Excel workbooks.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/safeforhall/internal/models"
)

// RosterSheet is the name of the worksheet holding the roster.
const RosterSheet = "Roster"

// RosterHeader lists the roster columns.
var RosterHeader = []string{
	"#",
	"Name",
	"Room",
	"Phone",
	"Email",
	"Vaccinated",
	"Faculty",
	"Last FET Date",
	"Last Collection Date",
}

// RosterFilename returns a file name for an event's roster.
func RosterFilename(event models.Event) string {
	name := strings.Join(strings.Fields(event.Name), "_")
	if name == "" {
		name = "event"
	}
	return fmt.Sprintf("%s_roster.xlsx", name)
}

// Roster builds a workbook listing the event's residents, decoded from its
// storage form, followed by a capacity and vaccination summary.
func Roster(event models.Event) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range RosterHeader {
		if err := setCell(f, col+1, 1, title); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(RosterHeader), 1)
	if err := f.SetCellStyle(RosterSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for i, rec := range event.Residents.Records() {
		vacc := "No"
		if rec.Vaccinated {
			vacc = "Yes"
		}
		values := []any{i + 1, rec.Name, rec.Room, rec.Phone, rec.Email, vacc, rec.Faculty,
			rec.LastFetDate.String(), rec.LastCollectionDate.String()}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	summary := [][]any{
		{"Event", event.Name},
		{"Residents", fmt.Sprintf("%d / %d", event.Residents.Len(), event.Capacity)},
		{"Unvaccinated", event.Residents.NumUnvaccinated()},
	}
	for _, line := range summary {
		for col, v := range line {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetColWidth(RosterSheet, "B", "I", 20); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(RosterSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	return nil
}
