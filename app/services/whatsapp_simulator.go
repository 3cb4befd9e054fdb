package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/models/other"
)

// SimulateIncomingText builds the webhook payload Meta would deliver for a
// text message sent to the business number. It lets the whatsapp-test
// command exercise webhook parsing without any real traffic.
func SimulateIncomingText(fromPhone, body string) *other.WhatsAppWebhookPayload {
	phone := strings.NewReplacer("+", "", " ", "").Replace(fromPhone)
	messageID := "wamid." + uuid.NewString()[:20]
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	return &other.WhatsAppWebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []other.WhatsAppWebhookItem{
			{
				ID:        "BUSINESS_ACCOUNT_ID",
				Timestamp: timestamp,
				Changes: []other.WhatsAppWebhookChange{
					{
						Field: "messages",
						Value: other.WhatsAppWebhookValue{
							MessagingProduct: "whatsapp",
							Metadata: other.WhatsAppWebhookMetadata{
								DisplayPhoneNumber: "1234567890",
								PhoneNumberID:      "1234567890123456",
							},
							Contacts: []other.WhatsAppWebhookContact{
								{
									Profile: other.WhatsAppWebhookProfile{Name: "Test User"},
									WaID:    phone,
								},
							},
							Messages: []other.WhatsAppIncomingMessage{
								{
									From:      phone,
									ID:        messageID,
									Timestamp: timestamp,
									Type:      "text",
									Text:      other.WhatsAppText{Body: body},
								},
							},
						},
					},
				},
			},
		},
	}
}

// SimulateOrderConfirmationReceived builds a mock incoming message echoing
// an order confirmation, with sample items and total.
func SimulateOrderConfirmationReceived(customerPhone, orderCode string) *other.WhatsAppWebhookPayload {
	body := fmt.Sprintf(
		"🎉 Your order #%s is confirmed!\n\n"+
			"Items: Product A x2, Product B x1\n"+
			"Total: ₹5000.00\n\n"+
			"We will update you on the delivery status soon.\n"+
			"Thank you for shopping with The Mannan Crackers!",
		orderCode)

	return SimulateIncomingText(customerPhone, body)
}

// FormatSimulatedMessage pretty-prints a simulated webhook payload the way
// a support person would read it.
func FormatSimulatedMessage(payload *other.WhatsAppWebhookPayload) string {
	divider := strings.Repeat("=", 70)

	var b strings.Builder
	b.WriteString("\n" + divider + "\n")
	b.WriteString("📱 SIMULATED WHATSAPP MESSAGE RECEIVED\n")
	b.WriteString(divider + "\n")

	if len(payload.Entry) == 0 ||
		len(payload.Entry[0].Changes) == 0 ||
		len(payload.Entry[0].Changes[0].Value.Messages) == 0 ||
		len(payload.Entry[0].Changes[0].Value.Contacts) == 0 {
		b.WriteString("Error: Could not parse message\n")
		return b.String()
	}

	value := payload.Entry[0].Changes[0].Value
	message := value.Messages[0]
	contact := value.Contacts[0]

	b.WriteString(fmt.Sprintf("From: %s\n", contact.Profile.Name))
	b.WriteString(fmt.Sprintf("Phone: +%s\n", message.From))
	b.WriteString(fmt.Sprintf("Message ID: %s\n", message.ID))
	b.WriteString(fmt.Sprintf("Timestamp: %s\n", message.Timestamp))
	b.WriteString(strings.Repeat("-", 70) + "\n")
	b.WriteString(fmt.Sprintf("Message:\n%s\n", message.Text.Body))
	b.WriteString(divider + "\n")

	return b.String()
}
