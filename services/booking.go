package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/models"

	"gorm.io/gorm"
)

const (
	// BookingCodePrefix prefixes every guest-facing booking code
	BookingCodePrefix = "OST-"
	// BookingCodeLength is the number of random characters after the prefix
	BookingCodeLength = 6
	// bookingCodeAlphabet omits characters that read ambiguously (0/O, 1/I)
	bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var bookingCodeRegex = regexp.MustCompile(`^OST-[A-Z0-9]{6}$`)

// BookingInput is the validated payload for a new booking request
type BookingInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// GenerateBookingCode creates a guest-friendly booking code (e.g. OST-K4M2PX)
func GenerateBookingCode() (string, error) {
	var sb strings.Builder
	sb.WriteString(BookingCodePrefix)
	for i := 0; i < BookingCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(bookingCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking code: %w", err)
		}
		sb.WriteByte(bookingCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// IsValidBookingCode validates the guest-facing booking code format
func IsValidBookingCode(code string) bool {
	return bookingCodeRegex.MatchString(code)
}

// CreateBooking validates a booking request against current availability and
// stores it as pending. Availability is re-aggregated here, at the point of
// commitment: if the snapshot cannot be built the booking is refused rather
// than accepted against unknown availability.
func CreateBooking(ctx context.Context, db *gorm.DB, cfg *config.Config, input BookingInput) (*models.Booking, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(input.GuestEmail) == "" || !strings.Contains(input.GuestEmail, "@") {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if strings.TrimSpace(input.GuestPhone) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if input.Guests < 1 {
		return nil, fmt.Errorf("number of guests must be at least 1")
	}

	settings, err := GetSettings(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking settings: %w", err)
	}
	if input.Guests > settings.MaxGuests {
		return nil, fmt.Errorf("this apartment accommodates at most %d guests", settings.MaxGuests)
	}

	snapshot, err := LoadUnavailableDates(ctx, db, AvailabilityOptions{IncludeConfirmedBookings: true})
	if err != nil {
		return nil, fmt.Errorf("availability could not be verified, please try again: %w", err)
	}
	if err := snapshot.Unavailable.ValidateStay(input.CheckIn, input.CheckOut, settings.MinimumNights); err != nil {
		return nil, err
	}

	code, err := GenerateBookingCode()
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Code:            code,
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.ToLower(strings.TrimSpace(input.GuestEmail)),
		GuestPhone:      strings.TrimSpace(input.GuestPhone),
		CheckIn:         Day(input.CheckIn),
		CheckOut:        Day(input.CheckOut),
		Guests:          input.Guests,
		SpecialRequests: SanitizeText(input.SpecialRequests),
		Status:          models.BookingStatusPending,
	}

	if err := db.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	SendEmailAsync(cfg, BuildBookingReceivedEmail(cfg, booking))
	SendEmailAsync(cfg, BuildAdminNewBookingEmail(cfg, booking))

	return booking, nil
}

// GetBookingByCode fetches a booking by its guest-facing code and email.
// Both must match so a code alone cannot leak someone else's details.
func GetBookingByCode(db *gorm.DB, code, email string) (*models.Booking, error) {
	if !IsValidBookingCode(code) {
		return nil, fmt.Errorf("invalid booking code format")
	}

	var booking models.Booking
	err := db.Where("code = ? AND guest_email = ?", code, strings.ToLower(strings.TrimSpace(email))).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no booking found for that code and email")
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &booking, nil
}

// GetBookingByID fetches a booking by its internal ID (admin paths)
func GetBookingByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// ListBookings returns bookings for the admin dashboard, newest first,
// optionally filtered by status
func ListBookings(db *gorm.DB, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	query := db.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus moves a booking between states and keeps the public
// booked_dates records in sync: confirming writes the date range, any other
// transition removes it. Status emails go out after a successful update.
func UpdateBookingStatus(db *gorm.DB, cfg *config.Config, id, status string) (*models.Booking, error) {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusRejected, models.BookingStatusCancelled:
	default:
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}

	booking, err := GetBookingByID(db, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return syncBookedDates(tx, booking, status == models.BookingStatusConfirmed)
	})
	if err != nil {
		return nil, err
	}
	booking.Status = status

	switch status {
	case models.BookingStatusConfirmed:
		SendEmailAsync(cfg, BuildBookingConfirmedEmail(cfg, booking))
	case models.BookingStatusRejected:
		SendEmailAsync(cfg, BuildBookingRejectedEmail(cfg, booking))
	}

	return booking, nil
}

// syncBookedDates mirrors lib-level booking bookkeeping: a confirmed booking
// owns exactly one booked_dates range record; losing confirmed status removes
// every record tied to the booking.
func syncBookedDates(tx *gorm.DB, booking *models.Booking, confirmed bool) error {
	// Always clear first so a confirm after an earlier confirm cannot
	// leave duplicates behind
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookedDate{}).Error; err != nil {
		return fmt.Errorf("failed to clear booked dates: %w", err)
	}

	if !confirmed {
		return nil
	}

	start := Day(booking.CheckIn)
	end := Day(booking.CheckOut)
	record := &models.BookedDate{
		BookingID: booking.ID,
		StartDate: &start,
		EndDate:   &end,
	}
	if err := tx.Create(record).Error; err != nil {
		return fmt.Errorf("failed to record booked dates: %w", err)
	}
	return nil
}

// DeleteBooking removes a booking and its booked-date records entirely
func DeleteBooking(db *gorm.DB, id string) error {
	booking, err := GetBookingByID(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookedDate{}).Error; err != nil {
			return fmt.Errorf("failed to delete booked dates: %w", err)
		}
		if err := tx.Delete(booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}
