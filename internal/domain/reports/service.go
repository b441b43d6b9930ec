package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"empdir/internal/domain/directory"
)

type Service struct {
	store *directory.Store
}

func NewService(store *directory.Store) *Service {
	return &Service{store: store}
}

// DirectoryPDF renders the full employee directory as a PDF table.
// Password hashes never reach this layer's output.
func (s *Service) DirectoryPDF(ctx context.Context) ([]byte, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(60, 10, "Employee Directory")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d employees", time.Now().UTC().Format("2006-01-02 15:04 MST"), len(employees)))
	pdf.Ln(10)

	headers := []string{"Name", "Email", "Role", "Phone", "Experience", "Joined"}
	widths := []float64{55, 75, 30, 40, 25, 30}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, emp := range employees {
		cells := []string{
			emp.Name,
			emp.Email,
			emp.Role,
			emp.Phone,
			fmt.Sprintf("%d yrs", emp.Experience),
			emp.CreatedAt.Format("2006-01-02"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
