package other

// Meta WhatsApp Cloud API message payloads.

type WhatsAppText struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type WhatsAppTextMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             WhatsAppText `json:"text"`
}

type WhatsAppMessageRef struct {
	ID string `json:"id"`
}

type WhatsAppSendResponse struct {
	Messages []WhatsAppMessageRef `json:"messages"`
}

// Incoming webhook payload shapes, used by the whatsapp-test simulator.

type WhatsAppWebhookPayload struct {
	Object string                `json:"object"`
	Entry  []WhatsAppWebhookItem `json:"entry"`
}

type WhatsAppWebhookItem struct {
	ID        string                  `json:"id"`
	Changes   []WhatsAppWebhookChange `json:"changes"`
	Timestamp string                  `json:"timestamp"`
}

type WhatsAppWebhookChange struct {
	Value WhatsAppWebhookValue `json:"value"`
	Field string               `json:"field"`
}

type WhatsAppWebhookValue struct {
	MessagingProduct string                    `json:"messaging_product"`
	Metadata         WhatsAppWebhookMetadata   `json:"metadata"`
	Contacts         []WhatsAppWebhookContact  `json:"contacts"`
	Messages         []WhatsAppIncomingMessage `json:"messages"`
}

type WhatsAppWebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WhatsAppWebhookContact struct {
	Profile WhatsAppWebhookProfile `json:"profile"`
	WaID    string                 `json:"wa_id"`
}

type WhatsAppWebhookProfile struct {
	Name string `json:"name"`
}

type WhatsAppIncomingMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      WhatsAppText `json:"text"`
}
