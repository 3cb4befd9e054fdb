package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/models/other"
)

const (
	ModeDryRun     = "dry_run"
	ModeProduction = "production"
)

// SendResult is the single outcome type for a WhatsApp send attempt. The
// client reports every failure through it instead of returning an error, so
// callers on the notification path can never be knocked over by a bad number
// or a flaky API.
type SendResult struct {
	Success   bool                       `json:"success"`
	Mode      string                     `json:"mode,omitempty"`
	Message   string                     `json:"message,omitempty"`
	MessageID string                     `json:"message_id,omitempty"`
	Error     string                     `json:"error,omitempty"`
	Details   string                     `json:"details,omitempty"`
	To        string                     `json:"to,omitempty"`
	Payload   *other.WhatsAppTextMessage `json:"payload,omitempty"`

	// Set by the notification service when it aggregates per-recipient
	// results for one order.
	OrderID       string `json:"order_id,omitempty"`
	RecipientType string `json:"recipient_type,omitempty"`
	UpdateType    string `json:"update_type,omitempty"`
}

type WhatsAppClient interface {
	SendText(ctx context.Context, to, body string) *SendResult
}

type whatsAppCloudClient struct {
	phoneNumberID string
	accessToken   string
	apiVersion    string
	dryRun        bool
	client        *http.Client
	baseURL       string
}

func NewWhatsAppClient(cfg configs.WhatsAppConfig) (WhatsAppClient, error) {
	if !cfg.DryRun && (cfg.PhoneNumberID == "" || cfg.AccessToken == "") {
		return nil, errors.New("WHATSAPP_PHONE_NUMBER_ID and WHATSAPP_ACCESS_TOKEN must be set when WHATSAPP_DRY_RUN=false")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "v18.0"
	}

	return &whatsAppCloudClient{
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
		apiVersion:    apiVersion,
		dryRun:        cfg.DryRun,
		client:        &http.Client{Timeout: 10 * time.Second},
		baseURL:       baseURL,
	}, nil
}

var phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func cleanPhoneNumber(phone string) string {
	return phoneCleaner.Replace(phone)
}

// validatePhoneNumber returns an empty string for a valid number, otherwise
// the rejection message.
func validatePhoneNumber(phone string) string {
	cleaned := cleanPhoneNumber(phone)

	if !strings.HasPrefix(cleaned, "+") {
		return "Phone number must start with '+' (e.g., +91XXXXXXXXXX)"
	}

	digits := cleaned[1:]
	if len(digits) == 0 {
		return "Phone number must contain only digits after '+'"
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "Phone number must contain only digits after '+'"
		}
	}

	if len(cleaned) < 10 {
		return "Phone number must be at least 10 digits"
	}

	return ""
}

func (c *whatsAppCloudClient) mode() string {
	if c.dryRun {
		return ModeDryRun
	}
	return ModeProduction
}

func (c *whatsAppCloudClient) SendText(ctx context.Context, to, body string) *SendResult {
	if errMsg := validatePhoneNumber(to); errMsg != "" {
		log.Printf("WhatsAppClient: invalid phone number: %s (received: %s)", errMsg, to)
		return &SendResult{Success: false, Error: errMsg, Mode: c.mode()}
	}

	if strings.TrimSpace(body) == "" {
		log.Println("WhatsAppClient: message body cannot be empty")
		return &SendResult{Success: false, Error: "Message body cannot be empty", Mode: c.mode()}
	}

	payload := &other.WhatsAppTextMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text: other.WhatsAppText{
			PreviewURL: false,
			Body:       body,
		},
	}

	if c.dryRun {
		pretty, _ := json.MarshalIndent(payload, "", "  ")
		log.Printf("WhatsAppClient: [DRY RUN] message would be sent\nTo: %s\nMessage: %s\nFull Payload: %s", to, body, pretty)
		return &SendResult{
			Success: true,
			Mode:    ModeDryRun,
			Message: "Message logged (dry-run mode)",
			Payload: payload,
			To:      to,
		}
	}

	return c.post(ctx, payload)
}

func (c *whatsAppCloudClient) post(ctx context.Context, payload *other.WhatsAppTextMessage) *SendResult {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &SendResult{Success: false, Mode: ModeProduction, Error: fmt.Sprintf("Request failed: %v", err), To: payload.To}
	}

	url := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, c.phoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return &SendResult{Success: false, Mode: ModeProduction, Error: fmt.Sprintf("Request failed: %v", err), To: payload.To}
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeoutErr(err) {
			log.Printf("WhatsAppClient: API request timeout (recipient: %s)", payload.To)
			return &SendResult{Success: false, Mode: ModeProduction, Error: "API request timeout", To: payload.To}
		}
		log.Printf("WhatsAppClient: API request failed: %v", err)
		return &SendResult{Success: false, Mode: ModeProduction, Error: fmt.Sprintf("Request failed: %v", err), To: payload.To}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SendResult{Success: false, Mode: ModeProduction, Error: fmt.Sprintf("Request failed: %v", err), To: payload.To}
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var apiResponse other.WhatsAppSendResponse
		messageID := ""
		if err := json.Unmarshal(respBody, &apiResponse); err == nil && len(apiResponse.Messages) > 0 {
			messageID = apiResponse.Messages[0].ID
		}
		log.Printf("WhatsAppClient: ✅ message sent to %s (Message ID: %s)", payload.To, messageID)
		return &SendResult{Success: true, Mode: ModeProduction, MessageID: messageID, To: payload.To}
	}

	log.Printf("WhatsAppClient: ❌ API error (Status %d): %s", resp.StatusCode, respBody)
	return &SendResult{
		Success: false,
		Mode:    ModeProduction,
		Error:   fmt.Sprintf("API returned status %d", resp.StatusCode),
		Details: string(respBody),
		To:      payload.To,
	}
}

func isTimeoutErr(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
