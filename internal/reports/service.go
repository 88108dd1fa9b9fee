package reports

import (
	"time"

	"github.com/gracechapel/church-management-backend/internal/validation"
)

type Service interface {
	ExportDonations(format string, from, to time.Time) ([]byte, string, string, error)
	ExportMembers(format string) ([]byte, string, string, error)
}

type service struct {
	repo     *Repository
	exporter Exporter
}

func NewService(repo *Repository, exporter Exporter) Service {
	return &service{repo: repo, exporter: exporter}
}

func validFormat(format string) error {
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
		return nil
	}
	errs := validation.Errors{}
	errs.Add("format", "Must be one of: csv, excel, pdf")
	return errs
}

func (s *service) ExportDonations(format string, from, to time.Time) ([]byte, string, string, error) {
	if err := validFormat(format); err != nil {
		return nil, "", "", err
	}
	rows, err := s.repo.DonationRows(from, to)
	if err != nil {
		return nil, "", "", err
	}
	return s.exporter.Export(ReportTypeDonations, format, ReportData{Donations: rows})
}

func (s *service) ExportMembers(format string) ([]byte, string, string, error) {
	if err := validFormat(format); err != nil {
		return nil, "", "", err
	}
	rows, err := s.repo.MemberRows()
	if err != nil {
		return nil, "", "", err
	}
	return s.exporter.Export(ReportTypeMembers, format, ReportData{Members: rows})
}
