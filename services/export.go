package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// bookingExportHeaders are the columns of the admin bookings export
var bookingExportHeaders = []string{
	"Code", "Guest", "Email", "Phone", "Check-in", "Check-out", "Nights", "Guests", "Status", "Requested At",
}

// ExportBookingsXLSX builds a spreadsheet of bookings for the admin dashboard,
// optionally filtered by status. The caller owns closing the returned file.
func ExportBookingsXLSX(db *gorm.DB, status string) (*excelize.File, error) {
	bookings, err := ListBookings(db, status)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to prepare export sheet: %w", err)
	}

	for col, header := range bookingExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to build export header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for row, b := range bookings {
		values := []interface{}{
			b.Code,
			b.GuestName,
			b.GuestEmail,
			b.GuestPhone,
			b.CheckIn.Format(DayFormat),
			b.CheckOut.Format(DayFormat),
			b.Nights(),
			b.Guests,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to build export cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write export row %d: %w", row+2, err)
			}
		}
	}

	return f, nil
}
