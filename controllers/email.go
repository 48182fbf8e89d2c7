package controllers

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"loopcart/utils"
)

// Mailer delivers one HTML email to the configured inbox. Satisfied by
// utils.EmailService; tests substitute a fake.
type Mailer interface {
	Send(subject, htmlBody, replyTo string) error
}

// EmailController handles the public form-to-email endpoints. Delivery is
// fire-and-forget: one attempt, no queue.
type EmailController struct {
	Mailer Mailer
}

// NewEmailController creates a new EmailController.
func NewEmailController(mailer Mailer) *EmailController {
	return &EmailController{Mailer: mailer}
}

func respondEmailResult(w http.ResponseWriter, err error, okMessage, failMessage string) {
	if err != nil {
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": failMessage,
		})
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": okMessage,
	})
}

func respondEmailBadRequest(w http.ResponseWriter, message string) {
	utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

type exclusiveAccessRequest struct {
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Boutique   string   `json:"boutique"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Categories []string `json:"categories"`
	Message    string   `json:"message"`
}

// ExclusiveAccess forwards an exclusive-collection access request to the
// concierge inbox.
func (ec *EmailController) ExclusiveAccess(w http.ResponseWriter, r *http.Request) {
	var req exclusiveAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondEmailBadRequest(w, "Invalid input")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Boutique == "" || req.Date == "" || req.Time == "" {
		respondEmailBadRequest(w, "Missing required fields")
		return
	}

	cats := "None"
	if len(req.Categories) > 0 {
		cats = strings.Join(req.Categories, ", ")
	}

	htmlBody := fmt.Sprintf(`<h2>New Exclusive Access Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Boutique:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Categories:</strong> %s</p>
<p><strong>Special Request:</strong> %s</p>`,
		html.EscapeString(req.FullName),
		html.EscapeString(req.Email),
		html.EscapeString(orDefault(req.Phone, "Not provided")),
		html.EscapeString(req.Boutique),
		html.EscapeString(req.Date),
		html.EscapeString(req.Time),
		html.EscapeString(cats),
		html.EscapeString(orDefault(req.Message, "None")),
	)

	err := ec.Mailer.Send("New Exclusive Collection Request", htmlBody, "")
	respondEmailResult(w, err, "Email sent successfully!", "Failed to send email")
}

type conciergeRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// PersonalConcierge forwards a concierge request, with Reply-To set to the
// requester so staff can answer directly.
func (ec *EmailController) PersonalConcierge(w http.ResponseWriter, r *http.Request) {
	var req conciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondEmailBadRequest(w, "Invalid input")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		respondEmailBadRequest(w, "Name, email and message are required")
		return
	}

	subject := fmt.Sprintf("New Personal Concierge Request: %s", orDefault(req.Subject, "No subject"))
	htmlBody := fmt.Sprintf(`<h2>New Personal Concierge Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(orDefault(req.Subject, "Not provided")),
		html.EscapeString(req.Message),
	)

	err := ec.Mailer.Send(subject, htmlBody, req.Email)
	respondEmailResult(w, err, "Concierge request sent successfully!", "Failed to send concierge email")
}

// NewsletterSubscribe records a newsletter signup by notifying the configured
// inbox.
func (ec *EmailController) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondEmailBadRequest(w, "Invalid input")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidEmail(req.Email) {
		respondEmailBadRequest(w, "A valid email is required")
		return
	}

	htmlBody := fmt.Sprintf(`<h2>New Newsletter Subscription</h2>
<p><strong>Email:</strong> %s</p>`, html.EscapeString(req.Email))

	err := ec.Mailer.Send("New Newsletter Subscription", htmlBody, req.Email)
	respondEmailResult(w, err, "Subscribed successfully!", "Failed to subscribe")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
