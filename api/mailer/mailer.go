package mailer

import (
	"errors"
	"fmt"

	"github.com/matcornic/hermes/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNoAPIKey = errors.New("SENDGRID_API_KEY is not set")

// Sender delivers the password reset email.
type Sender interface {
	SendResetPassword(toEmail, resetURL string) error
}

type Config struct {
	APIKey   string
	From     string
	FromName string
	AppURL   string
}

type SendGrid struct {
	cfg    Config
	client *sendgrid.Client
}

func NewSendGrid(cfg Config) (*SendGrid, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	return &SendGrid{cfg: cfg, client: sendgrid.NewSendClient(cfg.APIKey)}, nil
}

func (s *SendGrid) SendResetPassword(toEmail, resetURL string) error {
	html, text, err := RenderResetPassword(s.cfg.FromName, s.cfg.AppURL, resetURL)
	if err != nil {
		return err
	}

	from := mail.NewEmail(s.cfg.FromName, s.cfg.From)
	to := mail.NewEmail(toEmail, toEmail)
	message := mail.NewSingleEmail(from, "Reset Password", to, text, html)

	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// RenderResetPassword builds the HTML and plain text bodies of the reset email.
func RenderResetPassword(productName, productLink, resetURL string) (string, string, error) {
	h := hermes.Hermes{
		Product: hermes.Product{
			Name: productName,
			Link: productLink,
		},
	}
	email := hermes.Email{
		Body: hermes.Body{
			Intros: []string{
				"You have received this email because a password reset request for your account was received.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to reset your password:",
					Button: hermes.Button{
						Color: "#DC4D2F",
						Text:  "Reset your password",
						Link:  resetURL,
					},
				},
			},
			Outros: []string{
				"If you did not request a password reset, no further action is required on your part.",
			},
			Signature: "Thanks",
		},
	}

	html, err := h.GenerateHTML(email)
	if err != nil {
		return "", "", err
	}
	text, err := h.GeneratePlainText(email)
	if err != nil {
		return "", "", err
	}
	return html, text, nil
}
