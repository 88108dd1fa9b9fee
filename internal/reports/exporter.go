package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders report rows in the requested format and returns the
// payload with a filename and content type.
type Exporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeDonations:
		return e.exportDonationsByFormat(format, timestamp, data.Donations)
	case ReportTypeMembers:
		return e.exportMembersByFormat(format, timestamp, data.Members)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

// ============================
// Donations

func (e *exporter) exportDonationsByFormat(format, timestamp string, rows []DonationReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.exportDonationsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("donations_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportDonationsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("donations_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportDonationsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("donations_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for donations: %s", format)
	}
}

func (e *exporter) exportDonationsCSV(rows []DonationReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Donor", "Amount", "Method", "Designation", "Status", "Donated At"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.DonorName,
			fmt.Sprintf("%.2f", r.Amount),
			r.Method,
			r.Designation,
			r.Status,
			r.DonatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportDonationsExcel(rows []DonationReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Donations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Donor", "Amount", "Method", "Designation", "Status", "Donated At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	var total float64
	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.DonorName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Method)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Designation)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.DonatedAt.Format("2006-01-02 15:04:05"))
		total += r.Amount
	}

	totalRow := len(rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), total)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportDonationsPDF(rows []DonationReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Donations Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Donor", "Amount", "Method", "Status", "Donated At"}
	widths := []float64{15, 50, 25, 30, 25, 45}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	var total float64
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, strconv.FormatUint(uint64(r.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.DonorName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", r.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.Method, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, r.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 7, r.DonatedAt.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		total += r.Amount
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 8, fmt.Sprintf("%.2f", total), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ============================
// Member directory

func (e *exporter) exportMembersByFormat(format, timestamp string, rows []MemberReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.exportMembersCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("member_directory_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportMembersExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("member_directory_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportMembersPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("member_directory_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for members: %s", format)
	}
}

func (e *exporter) exportMembersCSV(rows []MemberReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Username", "Email", "Phone", "Address", "Join Date"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		joinDate := ""
		if r.JoinDate != nil {
			joinDate = r.JoinDate.Format("2006-01-02")
		}
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.FullName,
			r.Username,
			r.Email,
			r.Phone,
			r.Address,
			joinDate,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMembersExcel(rows []MemberReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Member Directory"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Name", "Username", "Email", "Phone", "Address", "Join Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		joinDate := ""
		if r.JoinDate != nil {
			joinDate = r.JoinDate.Format("2006-01-02")
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Username)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Email)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Address)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), joinDate)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMembersPDF(rows []MemberReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Member Directory")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Name", "Username", "Email", "Phone", "Join Date"}
	widths := []float64{15, 60, 45, 70, 45, 35}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		joinDate := ""
		if r.JoinDate != nil {
			joinDate = r.JoinDate.Format("2006-01-02")
		}
		pdf.CellFormat(widths[0], 7, strconv.FormatUint(uint64(r.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Username, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, r.Phone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, joinDate, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
