package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDonations() []DonationReportRow {
	return []DonationReportRow{
		{ID: 1, DonorName: "Alice Smith", Amount: 100.50, Method: "cash", Designation: "general", Status: "success", DonatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2, DonorName: "Anonymous", Amount: 25, Method: "online", Designation: "missions", Status: "success", DonatedAt: time.Date(2026, 8, 2, 11, 30, 0, 0, time.UTC)},
	}
}

func TestExportDonationsCSV(t *testing.T) {
	e := NewExporter()

	data, filename, contentType, err := e.Export(ReportTypeDonations, FormatCSV, ReportData{Donations: sampleDonations()})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "donations_report_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Donor", "Amount", "Method", "Designation", "Status", "Donated At"}, records[0])
	assert.Equal(t, "Alice Smith", records[1][1])
	assert.Equal(t, "100.50", records[1][2])
	assert.Equal(t, "Anonymous", records[2][1])
}

func TestExportMembersCSV(t *testing.T) {
	e := NewExporter()
	join := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := []MemberReportRow{
		{ID: 1, FullName: "Alice Smith", Username: "alice", Email: "alice@example.com", Phone: "555-123-4567", JoinDate: &join},
		{ID: 2, FullName: "Bob Jones", Username: "bob", Email: "bob@example.com", Phone: "555-999-8888"},
	}

	data, filename, contentType, err := e.Export(ReportTypeMembers, FormatCSV, ReportData{Members: rows})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "member_directory_"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-15", records[1][6])
	assert.Equal(t, "", records[2][6])
}

func TestExportExcelAndPDF(t *testing.T) {
	e := NewExporter()
	data := ReportData{Donations: sampleDonations()}

	xlsx, _, contentType, err := e.Export(ReportTypeDonations, FormatExcel, data)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	// xlsx files are zip archives.
	require.True(t, len(xlsx) > 4)
	assert.Equal(t, []byte{'P', 'K'}, xlsx[:2])

	pdf, _, contentType, err := e.Export(ReportTypeDonations, FormatPDF, data)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	require.True(t, len(pdf) > 5)
	assert.Equal(t, []byte("%PDF-"), pdf[:5])
}

func TestExportUnknownTypeOrFormat(t *testing.T) {
	e := NewExporter()

	_, _, _, err := e.Export("unknown", FormatCSV, ReportData{})
	assert.Error(t, err)

	_, _, _, err = e.Export(ReportTypeDonations, "xml", ReportData{})
	assert.Error(t, err)
}
