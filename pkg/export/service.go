package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/xuri/excelize/v2"
)

// Format is a supported export file format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// File is a generated export ready to be sent to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	LeadCount   int
}

// Service generates lead exports.
type Service struct {
	leadService *leads.Service
	maxRows     int
}

// NewService creates a new export service.
func NewService(leadService *leads.Service, maxRows int) *Service {
	if maxRows <= 0 {
		maxRows = 10000
	}
	return &Service{
		leadService: leadService,
		maxRows:     maxRows,
	}
}

// Generate builds an export of the leads matching the given filters.
func (s *Service) Generate(ctx context.Context, format Format, filters models.LeadListRequest) (*File, error) {
	if format != FormatCSV && format != FormatExcel {
		return nil, fmt.Errorf("invalid format: must be csv or excel")
	}

	result, err := s.leadService.ListLimited(ctx, filters, s.maxRows)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	rows := result.Data

	timestamp := time.Now().Format("20060102-150405")

	if format == FormatCSV {
		data, err := generateCSV(rows)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        fmt.Sprintf("leads-%s.csv", timestamp),
			ContentType: "text/csv",
			Data:        data,
			LeadCount:   len(rows),
		}, nil
	}

	data, err := generateExcel(rows)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        fmt.Sprintf("leads-%s.xlsx", timestamp),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
		LeadCount:   len(rows),
	}, nil
}

var exportHeaders = []string{
	"ID", "Name", "Source", "Sales Agent", "Status", "Tags",
	"Time To Close", "Priority", "Closed At", "Created At",
}

// generateCSV renders leads as CSV
func generateCSV(rows []models.LeadResponse) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, l := range rows {
		closedAt := ""
		if l.ClosedAt != nil {
			closedAt = l.ClosedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.Itoa(l.ID),
			l.Name,
			l.Source,
			l.SalesAgentName,
			l.Status,
			strings.Join(l.Tags, ";"),
			strconv.Itoa(l.TimeToClose),
			l.Priority,
			closedAt,
			l.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// generateExcel renders leads as an Excel workbook
func generateExcel(rows []models.LeadResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, l := range rows {
		row := rowIdx + 2 // Start from row 2 (after header)
		closedAt := ""
		if l.ClosedAt != nil {
			closedAt = l.ClosedAt.Format(time.RFC3339)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), l.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), l.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), l.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), l.SalesAgentName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), l.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), strings.Join(l.Tags, ";"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), l.TimeToClose)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), l.Priority)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), closedAt)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), l.CreatedAt.Format(time.RFC3339))
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
