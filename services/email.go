package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback loads a template pair or falls back to a plain text
// body so an email always goes out even when a template file is missing
func buildEmailWithFallback(templateName string, tmplData interface{}, toEmail, fallbackText string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, tmplData)
	if err != nil {
		log.Printf("Error loading %s email template: %v", templateName, err)
		textBody = fallbackText
	}

	return &Email{
		To: []string{toEmail},
		// Subject is set by caller
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate loads an email template pair (.html/.txt) from templates/emails
func loadTemplate(templateName string, data interface{}) (html string, text string, err error) {
	basePath := "templates/emails"

	// Helper to load and execute a single file
	loadAndExec := func(ext string) (string, error) {
		path := filepath.Join(basePath, templateName+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %v", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %v", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template %s: %v", path, err)
		}
		return buf.String(), nil
	}

	htmlContent, err := loadAndExec(".html")
	if err != nil {
		return "", "", err
	}

	textContent, err := loadAndExec(".txt")
	if err != nil {
		return "", "", err
	}

	return htmlContent, textContent, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	// Create Resend client
	client := resend.NewClient(cfg.ResendAPIKey)

	// Build the from address
	fromAddress := fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom)

	// Create email params
	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      email.To,
		Subject: email.Subject,
	}

	// Set body (prefer HTML if available)
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	// Validate we have at least one body
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	// Send email via Resend
	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email asynchronously using a goroutine
// This is the recommended method for sending emails in handlers to avoid blocking HTTP responses
func SendEmailAsync(cfg *config.Config, email *Email) {
	// Create a copy of the email to avoid race conditions
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	// Send in goroutine
	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// BookingEmailData contains data for the guest-facing booking email templates
type BookingEmailData struct {
	GuestName       string
	Code            string
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
	StatusURL       string
	DashboardURL    string
	GuestEmail      string
	GuestPhone      string
}

func newBookingEmailData(cfg *config.Config, booking *models.Booking) BookingEmailData {
	return BookingEmailData{
		GuestName:       booking.GuestName,
		Code:            booking.Code,
		CheckIn:         booking.CheckIn.Format("January 2, 2006"),
		CheckOut:        booking.CheckOut.Format("January 2, 2006"),
		Guests:          booking.Guests,
		SpecialRequests: booking.SpecialRequests,
		StatusURL:       fmt.Sprintf("%s/booking-status?id=%s", cfg.AppURL, booking.Code),
		DashboardURL:    fmt.Sprintf("%s/admin/dashboard", cfg.AppURL),
		GuestEmail:      booking.GuestEmail,
		GuestPhone:      booking.GuestPhone,
	}
}

// BuildBookingReceivedEmail creates the "request received" email for the guest
func BuildBookingReceivedEmail(cfg *config.Config, booking *models.Booking) *Email {
	data := newBookingEmailData(cfg, booking)
	fallback := fmt.Sprintf(
		"Dear %s,\n\nWe have received your booking request (%s) for %s to %s and are reviewing it.\n\nOptimum Stay Homes",
		data.GuestName, data.Code, data.CheckIn, data.CheckOut)

	email := buildEmailWithFallback("booking_received", data, booking.GuestEmail, fallback)
	email.Subject = "Your Booking Request at Optimum Stay Homes"
	return email
}

// BuildAdminNewBookingEmail creates the new-request notification for the admin
func BuildAdminNewBookingEmail(cfg *config.Config, booking *models.Booking) *Email {
	data := newBookingEmailData(cfg, booking)
	fallback := fmt.Sprintf(
		"New booking request %s from %s (%s, %s): %s to %s, %d guests.",
		data.Code, data.GuestName, data.GuestEmail, data.GuestPhone, data.CheckIn, data.CheckOut, data.Guests)

	email := buildEmailWithFallback("admin_new_booking", data, cfg.AdminEmail, fallback)
	email.Subject = "New Booking Request - Optimum Stay Homes"
	return email
}

// BuildBookingConfirmedEmail creates the confirmation email for the guest
func BuildBookingConfirmedEmail(cfg *config.Config, booking *models.Booking) *Email {
	data := newBookingEmailData(cfg, booking)
	fallback := fmt.Sprintf(
		"Dear %s,\n\nYour booking %s has been confirmed: %s to %s. We look forward to welcoming you!\n\nOptimum Stay Homes",
		data.GuestName, data.Code, data.CheckIn, data.CheckOut)

	email := buildEmailWithFallback("booking_confirmed", data, booking.GuestEmail, fallback)
	email.Subject = "Your Booking at Optimum Stay Homes is Confirmed"
	return email
}

// BuildBookingRejectedEmail creates the rejection email for the guest
func BuildBookingRejectedEmail(cfg *config.Config, booking *models.Booking) *Email {
	data := newBookingEmailData(cfg, booking)
	fallback := fmt.Sprintf(
		"Dear %s,\n\nUnfortunately we are unable to accommodate your booking request %s for %s to %s. Please check our availability for alternative dates.\n\nOptimum Stay Homes",
		data.GuestName, data.Code, data.CheckIn, data.CheckOut)

	email := buildEmailWithFallback("booking_rejected", data, booking.GuestEmail, fallback)
	email.Subject = "Update on Your Booking Request at Optimum Stay Homes"
	return email
}
