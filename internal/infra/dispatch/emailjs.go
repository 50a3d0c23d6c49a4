package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"booking-intake/internal/domain/outbound"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/errs"
)

// EmailJS posts template params to the EmailJS REST endpoint.
type EmailJS struct {
	client    *http.Client
	endpoint  string
	serviceID string
	publicKey string
	templates map[outbound.Template]string
}

type emailJSRequest struct {
	ServiceID      string               `json:"service_id"`
	TemplateID     string               `json:"template_id"`
	UserID         string               `json:"user_id"`
	TemplateParams outbound.EmailParams `json:"template_params"`
}

func NewEmailJS(cfg config.EmailConfig, client *http.Client) (*EmailJS, error) {
	if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.PublicKey == "" {
		return nil, errs.New("emailjs requires EMAIL_SERVICE_ID, EMAIL_TEMPLATE_ID and EMAIL_PUBLIC_KEY")
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &EmailJS{
		client:    client,
		endpoint:  cfg.Endpoint,
		serviceID: cfg.ServiceID,
		publicKey: cfg.PublicKey,
		templates: map[outbound.Template]string{
			outbound.TemplateOwner:  cfg.TemplateID,
			outbound.TemplateClient: cfg.ClientTemplateID,
		},
	}, nil
}

// Send is a no-op for a template without a configured ID.
func (e *EmailJS) Send(ctx context.Context, tpl outbound.Template, params outbound.EmailParams) error {
	templateID := e.templates[tpl]
	if templateID == "" {
		return nil
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.serviceID,
		TemplateID:     templateID,
		UserID:         e.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return errs.Wrap(err, "encode emailjs request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build emailjs request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "emailjs %s", tpl), errs.ErrDispatchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(
			errs.Wrapf(fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg)), "emailjs %s", tpl),
			errs.ErrDispatchFailed,
		)
	}
	return nil
}
