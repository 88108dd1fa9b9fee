package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

const (
	ReportTypeDonations = "donations"
	ReportTypeMembers   = "members"
)

type DonationReportRow struct {
	ID          uint
	DonorName   string
	Amount      float64
	Method      string
	Designation string
	Status      string
	DonatedAt   time.Time
}

type MemberReportRow struct {
	ID       uint
	FullName string
	Username string
	Email    string
	Phone    string
	Address  string
	JoinDate *time.Time
}

type ReportData struct {
	Donations []DonationReportRow
	Members   []MemberReportRow
}
