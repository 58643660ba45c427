// Package report contains the vehicle report export use case.
package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// maxReportPhotos caps how many photo URLs appear on the sheet.
const maxReportPhotos = 3

// ExportVehiclePDFInput represents the input for the vehicle sheet export.
type ExportVehiclePDFInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
}

// ExportVehiclePDFOutput represents the output of the vehicle sheet export.
type ExportVehiclePDFOutput struct {
	FileName string
	Content  []byte
}

// ExportVehiclePDFUseCase renders a one-page vehicle sheet as PDF.
type ExportVehiclePDFUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
	photoRepo   adapter.PhotoRepository
}

// NewExportVehiclePDFUseCase creates a new ExportVehiclePDFUseCase instance.
func NewExportVehiclePDFUseCase(
	vehicleRepo adapter.VehicleRepository,
	costRepo adapter.CostRepository,
	photoRepo adapter.PhotoRepository,
) *ExportVehiclePDFUseCase {
	return &ExportVehiclePDFUseCase{
		vehicleRepo: vehicleRepo,
		costRepo:    costRepo,
		photoRepo:   photoRepo,
	}
}

// Execute renders the vehicle sheet: identity, pipeline status, prices, the
// cost ledger with totals, the margin when a sale price exists, and up to
// three photo URLs.
func (uc *ExportVehiclePDFUseCase) Execute(ctx context.Context, input ExportVehiclePDFInput) (*ExportVehiclePDFOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	costs, err := uc.costRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost entries: %w", err)
	}

	photos, err := uc.photoRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}

	totals, err := finance.ComputeTotals(vehicle, costs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s %d", vehicle.Make, vehicle.Model, vehicle.Year), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("%s %s (%d)", vehicle.Make, vehicle.Model, vehicle.Year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	for _, row := range identityRows(vehicle) {
		writeRow(row.Label, row.Value)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Cost ledger")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 10)
	if len(costs) == 0 {
		pdf.Cell(0, 6, "No cost entries recorded.")
		pdf.Ln(7)
	}
	for _, c := range costs {
		pdf.CellFormat(70, 6, c.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, string(c.Category), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, c.IncurredAt.Format("2006-01-02"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, formatMoney(c.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	for _, row := range totalsRows(totals) {
		writeRow(row.Label, row.Value)
	}

	if len(photos) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Photos")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 9)
		for i, p := range photos {
			if i == maxReportPhotos {
				break
			}
			pdf.Cell(0, 5, p.URL)
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return &ExportVehiclePDFOutput{
		FileName: fmt.Sprintf("vehicle-%s.pdf", vehicle.ID),
		Content:  buf.Bytes(),
	}, nil
}

// sheetRow is one labeled line of the vehicle sheet.
type sheetRow struct {
	Label string
	Value string
}

// identityRows builds the vehicle identity block in render order.
func identityRows(vehicle *entity.Vehicle) []sheetRow {
	salePrice := "N/A"
	if vehicle.SalePrice != nil {
		salePrice = formatMoney(*vehicle.SalePrice)
	}

	return []sheetRow{
		{Label: "Status", Value: string(vehicle.Status)},
		{Label: "Mileage", Value: fmt.Sprintf("%d km", vehicle.Mileage)},
		{Label: "Purchase price", Value: formatMoney(vehicle.PurchasePrice)},
		{Label: "Sale price", Value: salePrice},
	}
}

// totalsRows builds the financial summary block below the cost ledger.
func totalsRows(totals *finance.Totals) []sheetRow {
	margin := "N/A"
	if totals.Margin != nil {
		margin = formatMoney(*totals.Margin)
	}

	return []sheetRow{
		{Label: "Variable costs", Value: formatMoney(totals.VariableCosts)},
		{Label: "Total cost", Value: formatMoney(totals.TotalCost)},
		{Label: "Margin", Value: margin},
	}
}

// formatMoney renders minor currency units as a fixed two-decimal amount.
// Arithmetic stays on integers; decimal only does the final scaling.
func formatMoney(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2) + " EUR"
}
