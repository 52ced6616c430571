package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"optimum_stay_app_go/models"

	"gorm.io/gorm"
)

const (
	// FetchTimeout bounds each unavailable-date stream query so a hung
	// database call degrades to a per-stream warning instead of blocking
	FetchTimeout = 5 * time.Second

	// MaxCheckoutSearchDays bounds the forward search for a valid checkout
	// date; past this the calendar is too dense for a useful suggestion
	MaxCheckoutSearchDays = 30
)

// DateSet is a set of calendar days keyed YYYY-MM-DD. It is the derived
// structure all availability queries run against: a day is a member iff at
// least one blocked/booked interval contains it (inclusive on both ends).
type DateSet map[string]struct{}

// NewDateSet creates an empty DateSet
func NewDateSet() DateSet {
	return make(DateSet)
}

// Add inserts a single day into the set
func (s DateSet) Add(t time.Time) {
	s[DayKey(t)] = struct{}{}
}

// AddInterval expands the inclusive day range [start, end] into the set.
// Reversed intervals add nothing.
func (s DateSet) AddInterval(start, end time.Time) {
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		s[d.Format(DayFormat)] = struct{}{}
	}
}

// Has reports whether the given calendar day is unavailable
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[DayKey(t)]
	return ok
}

// Days returns the members sorted ascending as YYYY-MM-DD strings
func (s DateSet) Days() []string {
	days := make([]string, 0, len(s))
	for k := range s {
		days = append(days, k)
	}
	sort.Strings(days)
	return days
}

// IsRangeAvailable reports whether a whole stay [checkIn, checkOut] is free
// of unavailable days. Endpoints are checked first, then every interior day.
// A zero-value endpoint means no constraint, so the range counts as available.
//
// Note the checkout day itself must be free: intervals are expanded
// inclusively, so same-day turnover on another stay's checkout is not
// bookable. This is deliberate; a single-unit rental has no turnover slot.
func (s DateSet) IsRangeAvailable(checkIn, checkOut time.Time) bool {
	if checkIn.IsZero() || checkOut.IsZero() {
		return true
	}

	if s.Has(checkIn) || s.Has(checkOut) {
		return false
	}

	// Interior days, exclusive of both endpoints (already checked above)
	for d := Day(checkIn).AddDate(0, 0, 1); d.Before(Day(checkOut)); d = d.AddDate(0, 0, 1) {
		if _, ok := s[d.Format(DayFormat)]; ok {
			return false
		}
	}

	return true
}

// ValidateStay checks a proposed check-in/check-out pair against the
// minimum-nights rule and the unavailable-date set. It returns a descriptive
// error for invalid input; it never coerces.
func (s DateSet) ValidateStay(checkIn, checkOut time.Time, minimumNights int) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("check-in and check-out dates are required")
	}
	if minimumNights < 1 {
		return fmt.Errorf("minimum nights must be a positive number")
	}

	nights := DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return fmt.Errorf("check-out must be after check-in")
	}
	if nights < minimumNights {
		return fmt.Errorf("stay must be at least %d nights (selected: %d)", minimumNights, nights)
	}
	if !s.IsRangeAvailable(checkIn, checkOut) {
		return fmt.Errorf("selected dates are not available")
	}

	return nil
}

// FindNextAvailableCheckout searches forward from checkIn + minimumNights for
// the earliest checkout date that forms a fully available stay. At most
// MaxCheckoutSearchDays candidates are tried; ok is false when none fits,
// which is an expected outcome on a dense calendar, not an error.
func (s DateSet) FindNextAvailableCheckout(checkIn time.Time, minimumNights int) (time.Time, bool) {
	if checkIn.IsZero() || minimumNights < 1 {
		return time.Time{}, false
	}

	candidate := Day(checkIn).AddDate(0, 0, minimumNights)
	for i := 0; i < MaxCheckoutSearchDays; i++ {
		if !s.Has(candidate) && s.IsRangeAvailable(checkIn, candidate) {
			return candidate, true
		}
		candidate = candidate.AddDate(0, 0, 1)
	}

	return time.Time{}, false
}

// AvailabilitySnapshot is one aggregation pass over the raw records. It is
// rebuilt wholesale on every refresh and never merged with a previous pass,
// so unblocked days cannot resurface from stale data.
type AvailabilitySnapshot struct {
	Unavailable DateSet
	Warnings    []string // per-stream failures that did not abort aggregation
	FetchedAt   time.Time
}

// AvailabilityOptions controls which record streams the aggregator reads
type AvailabilityOptions struct {
	// IncludeConfirmedBookings also scans the bookings table directly, as a
	// supplement for booked_dates records that may be missing. The stream is
	// permission-optional: its failure is recorded as a warning, never an
	// error.
	IncludeConfirmedBookings bool
}

// LoadUnavailableDates aggregates blocked dates, booked dates and (optionally)
// confirmed bookings into a fresh snapshot. The streams are independent and
// fetched concurrently, each under its own timeout; failure of any one stream
// contributes a warning and nothing else. An error is returned only when the
// database handle itself is unusable.
func LoadUnavailableDates(ctx context.Context, db *gorm.DB, opts AvailabilityOptions) (*AvailabilitySnapshot, error) {
	if db == nil {
		return nil, fmt.Errorf("availability: database not initialized")
	}

	type interval struct {
		start, end time.Time
	}

	var (
		mu        sync.Mutex
		intervals []interval
		warnings  []string
		wg        sync.WaitGroup
	)

	collect := func(start, end time.Time) {
		mu.Lock()
		intervals = append(intervals, interval{start: start, end: end})
		mu.Unlock()
	}
	warn := func(stream string, err error) {
		log.Printf("[WARNING] availability: %s stream failed: %v", stream, err)
		mu.Lock()
		warnings = append(warnings, fmt.Sprintf("%s unavailable: %v", stream, err))
		mu.Unlock()
	}

	// Stream 1: admin-blocked date ranges
	wg.Add(1)
	go func() {
		defer wg.Done()
		streamCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()

		var blocked []models.BlockedDate
		if err := db.WithContext(streamCtx).Find(&blocked).Error; err != nil {
			warn("blocked dates", err)
			return
		}
		for _, b := range blocked {
			collect(b.StartDate, b.EndDate)
		}
	}()

	// Stream 2: booked-date records (range or single-day shape)
	wg.Add(1)
	go func() {
		defer wg.Done()
		streamCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()

		var booked []models.BookedDate
		if err := db.WithContext(streamCtx).Find(&booked).Error; err != nil {
			warn("booked dates", err)
			return
		}
		for _, b := range booked {
			if start, end, ok := b.Interval(); ok {
				collect(start, end)
			}
		}
	}()

	// Stream 3: confirmed bookings, as a supplement for missing booked_dates
	if opts.IncludeConfirmedBookings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			streamCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
			defer cancel()

			var bookings []models.Booking
			err := db.WithContext(streamCtx).
				Where("status = ?", models.BookingStatusConfirmed).
				Find(&bookings).Error
			if err != nil {
				warn("confirmed bookings", err)
				return
			}
			for _, b := range bookings {
				collect(b.CheckIn, b.CheckOut)
			}
		}()
	}

	wg.Wait()

	set := NewDateSet()
	for _, iv := range intervals {
		set.AddInterval(iv.start, iv.end)
	}

	return &AvailabilitySnapshot{
		Unavailable: set,
		Warnings:    warnings,
		FetchedAt:   time.Now().UTC(),
	}, nil
}
