package mailer

import "time"

// Confirmation данные письма-подтверждения бронирования
type Confirmation struct {
	To        string
	FirstName string
	LastName  string
	Phone     string
	Comment   *string
	Quantity  int
	Location  string
	StartAt   time.Time
	Token     string
	CreatedAt time.Time
}

// sendEmailRequest тело запроса POST {baseURL}/emails
type sendEmailRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"` // base64
	ContentType string `json:"content_type"`
}
