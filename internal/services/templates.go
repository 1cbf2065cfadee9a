package services

import (
	"fmt"
	"time"
)

// EmailTemplate selects which notification body is rendered.
type EmailTemplate string

const (
	TemplateAppointmentConfirmation EmailTemplate = "appointment_confirmation"
	TemplateAppointmentReminder     EmailTemplate = "appointment_reminder"
	TemplateAppointmentCancellation EmailTemplate = "appointment_cancellation"
	TemplateAppointmentRescheduled  EmailTemplate = "appointment_rescheduled"
	TemplateWelcome                 EmailTemplate = "welcome"
	TemplatePasswordReset           EmailTemplate = "password_reset"
)

// EmailData carries everything any template may need; unused fields are
// simply ignored by the template being rendered.
type EmailData struct {
	UserName  string
	UserEmail string
	UserPhone string

	ProviderName     string
	ProviderLocation string

	AppointmentTime    time.Time
	NewAppointmentTime time.Time
	OldAppointmentTime time.Time

	Symptoms    string
	Duration    string
	Description string

	ResetLink string
}

// Subject returns the subject line for a template.
func Subject(template EmailTemplate) string {
	switch template {
	case TemplateAppointmentConfirmation:
		return "Your Appointment Confirmation"
	case TemplateAppointmentReminder:
		return "Reminder: Your Upcoming Appointment"
	case TemplateAppointmentCancellation:
		return "Your Appointment Has Been Cancelled"
	case TemplateAppointmentRescheduled:
		return "Your Appointment Has Been Rescheduled"
	case TemplateWelcome:
		return "Welcome to Smart Care!"
	case TemplatePasswordReset:
		return "Password Reset Request"
	default:
		return "Smart Care Notification"
	}
}

// Render builds the plain-text body for a template.
func Render(template EmailTemplate, data EmailData) string {
	switch template {
	case TemplateAppointmentReminder:
		return reminderBody(data)
	case TemplateAppointmentCancellation:
		return cancellationBody(data)
	case TemplateAppointmentRescheduled:
		return rescheduledBody(data)
	case TemplateWelcome:
		return welcomeBody(data)
	case TemplatePasswordReset:
		return passwordResetBody(data)
	default:
		return confirmationBody(data)
	}
}

func formatAppointmentTime(t time.Time) string {
	if t.IsZero() {
		return "Not available"
	}
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func footer() string {
	return fmt.Sprintf("© %d Smart Care. All rights reserved.", time.Now().Year())
}

func confirmationBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

Your appointment has been successfully booked. Here are the details:

Appointment Details:
- Provider: %s
- Location: %s
- Date & Time: %s

Your Information Summary:
- Name: %s
- Email: %s
- Phone: %s
- Symptoms: %s
- Symptom Duration: %s
- Description: %s

If you need to cancel or reschedule, please do so through your dashboard.
Thank you for using our service!

%s
`,
		data.UserName,
		data.ProviderName,
		data.ProviderLocation,
		formatAppointmentTime(data.AppointmentTime),
		data.UserName,
		data.UserEmail,
		orNotProvided(data.UserPhone),
		orNotProvided(data.Symptoms),
		orNotProvided(data.Duration),
		orNotProvided(data.Description),
		footer(),
	)
}

func reminderBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

This is a friendly reminder about your upcoming appointment:

Appointment Details:
- Provider: %s
- Location: %s
- Date & Time: %s

Please arrive 15 minutes before your scheduled time. If you need to cancel or reschedule, please do so at least 24 hours in advance.

Thank you for choosing Smart Care!

%s
`,
		data.UserName,
		data.ProviderName,
		data.ProviderLocation,
		formatAppointmentTime(data.AppointmentTime),
		footer(),
	)
}

func cancellationBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

Your appointment has been cancelled as requested. Here are the details of the cancelled appointment:

Appointment Details:
- Provider: %s
- Location: %s
- Date & Time: %s

If you would like to schedule a new appointment, please visit our website or app.

Thank you for using Smart Care!

%s
`,
		data.UserName,
		data.ProviderName,
		data.ProviderLocation,
		formatAppointmentTime(data.AppointmentTime),
		footer(),
	)
}

func rescheduledBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

Your appointment has been rescheduled. Here are the updated details:

New Appointment Details:
- Provider: %s
- Location: %s
- New Date & Time: %s
- Previous Time: %s

If you need to make any further changes, please do so through your dashboard.

Thank you for using Smart Care!

%s
`,
		data.UserName,
		data.ProviderName,
		data.ProviderLocation,
		formatAppointmentTime(data.NewAppointmentTime),
		formatAppointmentTime(data.OldAppointmentTime),
		footer(),
	)
}

func welcomeBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

Thank you for registering with Smart Care. We're excited to help you find the right healthcare providers for your needs.

Getting Started:
Here are a few things you can do with Smart Care:
- Fill out your health profile to get personalized provider recommendations
- Search for healthcare providers based on your symptoms and insurance
- Book appointments with just a few clicks
- Get AI-generated care tips and recommendations

If you have any questions or need assistance, please don't hesitate to contact our support team.
We're glad to have you on board!

%s
`,
		data.UserName,
		footer(),
	)
}

func passwordResetBody(data EmailData) string {
	return fmt.Sprintf(`Hello %s,

We received a request to reset your password. If you didn't make this request, you can safely ignore this email.

To reset your password, please use the following link:
%s

This link will expire in 1 hour for security reasons.

%s
`,
		data.UserName,
		data.ResetLink,
		footer(),
	)
}
