package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/icsexport"
)

// Config параметры почтового клиента
type Config struct {
	Enabled       bool
	BaseURL       string
	APIKey        string
	From          string
	PublicBaseURL string // адрес публичного сайта для ссылок изменения и отмены
	Timeout       time.Duration
	Location      *time.Location // часовой пояс, в котором время показывается в письме
}

// Client клиент транзакционного почтового API
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Enabled сообщает, включена ли отправка писем
func (c *Client) Enabled() bool {
	return c.cfg.Enabled
}

// SendConfirmation отправляет письмо-подтверждение с .ics вложением
func (c *Client) SendConfirmation(ctx context.Context, conf Confirmation) error {
	if !c.cfg.Enabled {
		return ErrDisabled
	}

	payload, err := c.buildRequest(conf)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Confirmation email accepted by mail API for slot at %s", conf.StartAt.UTC().Format(time.RFC3339))
	return nil
}

func (c *Client) buildRequest(conf Confirmation) (*sendEmailRequest, error) {
	local := conf.StartAt.In(c.cfg.Location)
	manageURL := c.ReservationURL(conf.Token)

	var text strings.Builder
	fmt.Fprintf(&text, "Bonjour %s %s,\n\n", conf.FirstName, conf.LastName)
	fmt.Fprintf(&text, "Votre réservation est confirmée : %s, le %s à %s (quantité : %d).\n\n",
		conf.Location, local.Format(domain.DateFormat), local.Format(domain.TimeFormat), conf.Quantity)
	fmt.Fprintf(&text, "Téléphone : %s\n", conf.Phone)
	if conf.Comment != nil && *conf.Comment != "" {
		fmt.Fprintf(&text, "Commentaire : %s\n", *conf.Comment)
	}
	text.WriteString("\n")
	fmt.Fprintf(&text, "Modifier : %s\n", manageURL)
	fmt.Fprintf(&text, "Annuler : %s?action=cancel\n", manageURL)

	ics, err := icsexport.Render(icsexport.Event{
		UID:      conf.Token + "@presence-booking",
		Summary:  "Réservation - " + conf.Location,
		Location: conf.Location,
		Start:    conf.StartAt,
		End:      conf.StartAt.Add(domain.SlotDuration),
		Created:  conf.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to render calendar: %v", ErrInternal, err)
	}

	return &sendEmailRequest{
		From:    c.cfg.From,
		To:      []string{conf.To},
		Subject: fmt.Sprintf("Réservation confirmée - %s %s", local.Format(domain.DateFormat), local.Format(domain.TimeFormat)),
		Text:    text.String(),
		Attachments: []attachment{{
			Filename:    "reservation.ics",
			Content:     base64.StdEncoding.EncodeToString([]byte(ics)),
			ContentType: icsexport.ContentType,
		}},
	}, nil
}

// ReservationURL возвращает публичную ссылку на бронирование
func (c *Client) ReservationURL(token string) string {
	return strings.TrimRight(c.cfg.PublicBaseURL, "/") + "/reservations/" + token
}
