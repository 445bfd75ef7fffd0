// Package export reads and writes the spreadsheet representations the panel
// offers next to every table.
package export

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/errorutil"
)

const sheet = "Sheet1"

var ErrMissingHeader = errorutil.New("the spreadsheet is missing its header row")

var clientHeader = []string{"Name", "Email", "Phone", "PAN", "GSTIN", "Branch Code", "Status"}

// ClientsWorkbook renders clients as a spreadsheet, one row per client under
// a fixed header. Branch references render as branch codes.
func ClientsWorkbook(clients []*client.Client, branchCodes map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeRow(f, 1, clientHeader); err != nil {
		return nil, err
	}

	for i, c := range clients {
		branchCode := ""
		if c.BranchID != nil {
			branchCode = branchCodes[c.BranchID.String()]
		}
		row := []string{c.Name, c.Email, c.Phone, c.PAN, c.GSTIN, branchCode, string(c.Status)}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ParsedClient is one imported spreadsheet row. The branch code is resolved
// to a branch reference by the caller.
type ParsedClient struct {
	Client     client.Client
	BranchCode string
}

// ParseClients reads client rows from a spreadsheet laid out the way
// ClientsWorkbook writes them. Blank rows are skipped; short rows are padded
// with empty cells.
func ParseClients(r io.Reader) ([]ParsedClient, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet: %w", err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read spreadsheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	var parsed []ParsedClient
	for _, row := range rows[1:] {
		row = pad(row, len(clientHeader))
		if row[0] == "" {
			continue
		}

		status := client.Status(row[6])
		if status == "" {
			status = client.StatusActive
		}

		parsed = append(parsed, ParsedClient{
			Client: client.Client{
				Name:   row[0],
				Email:  row[1],
				Phone:  row[2],
				PAN:    row[3],
				GSTIN:  row[4],
				Status: status,
			},
			BranchCode: row[5],
		})
	}

	return parsed, nil
}

// TimelineRow is one exported timeline with its references already resolved
// to display names.
type TimelineRow struct {
	Activity  string
	Clients   string
	Frequency string
	Schedule  string
	Status    string
	StartDate string
	EndDate   string
}

var timelineHeader = []string{"Activity", "Clients", "Frequency", "Schedule", "Status", "Start Date", "End Date"}

func TimelinesWorkbook(rows []TimelineRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeRow(f, 1, timelineHeader); err != nil {
		return nil, err
	}

	for i, t := range rows {
		row := []string{t.Activity, t.Clients, t.Frequency, t.Schedule, t.Status, t.StartDate, t.EndDate}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNumber int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNumber)
		if err != nil {
			return fmt.Errorf("could not build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("could not write cell %s: %w", cell, err)
		}
	}
	return nil
}

func pad(row []string, size int) []string {
	for len(row) < size {
		row = append(row, "")
	}
	return row
}
