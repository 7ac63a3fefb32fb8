// Package notify delivers best-effort email notifications for leave
// lifecycle events. Delivery failures are the caller's to log; they never
// affect the triggering operation.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/upasthiti/attendance-api/config"
	"github.com/upasthiti/attendance-api/models"
)

// Mailer sends the two leave lifecycle notifications.
type Mailer interface {
	// LeaveApplied notifies the reviewer address of a new application.
	LeaveApplied(leave *models.LeaveRequest, applicant *models.User) error
	// LeaveDecided notifies the applicant of an approval or rejection.
	LeaveDecided(leave *models.LeaveRequest, applicant *models.User) error
}

// SMTPMailer sends mail over plain SMTP with optional auth.
type SMTPMailer struct {
	Host       string
	Port       string
	User       string
	Password   string
	From       string
	AdminEmail string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		User:       cfg.SMTPUser,
		Password:   cfg.SMTPPassword,
		From:       cfg.EmailFrom,
		AdminEmail: cfg.AdminEmail,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}

func (m *SMTPMailer) LeaveApplied(leave *models.LeaveRequest, applicant *models.User) error {
	body := fmt.Sprintf(
		"New leave application\n\nName: %s\nEmail: %s\nStart date: %s\nEnd date: %s\nReason: %s\n\nPlease review and approve or reject this request.",
		applicant.Name, applicant.Email, leave.StartDate, leave.EndDate, leave.Reason,
	)
	return m.send(m.AdminEmail, "New Leave Application", body)
}

func (m *SMTPMailer) LeaveDecided(leave *models.LeaveRequest, applicant *models.User) error {
	outcome := "Rejected"
	if leave.Status == models.LeaveApproved {
		outcome = "Approved"
	}
	body := fmt.Sprintf(
		"Your leave request has been %s.\n\nStart date: %s\nEnd date: %s",
		strings.ToLower(outcome), leave.StartDate, leave.EndDate,
	)
	if leave.DecisionNotes != "" {
		body += "\nNotes: " + leave.DecisionNotes
	}
	body += "\n\nFor any questions, please contact your manager or admin."
	return m.send(applicant.Email, "Leave Request "+outcome, body)
}
