package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateIncomingText(t *testing.T) {
	payload := SimulateIncomingText("+91 80741 01457", "hello")

	assert.Equal(t, "whatsapp_business_account", payload.Object)
	require.Len(t, payload.Entry, 1)
	require.Len(t, payload.Entry[0].Changes, 1)

	value := payload.Entry[0].Changes[0].Value
	assert.Equal(t, "messages", payload.Entry[0].Changes[0].Field)
	assert.Equal(t, "whatsapp", value.MessagingProduct)

	require.Len(t, value.Messages, 1)
	message := value.Messages[0]
	assert.Equal(t, "918074101457", message.From, "plus sign and spaces should be stripped")
	assert.Equal(t, "text", message.Type)
	assert.Equal(t, "hello", message.Text.Body)
	assert.True(t, strings.HasPrefix(message.ID, "wamid."))

	require.Len(t, value.Contacts, 1)
	assert.Equal(t, "918074101457", value.Contacts[0].WaID)
	assert.Equal(t, "Test User", value.Contacts[0].Profile.Name)

	t.Run("round-trips through the webhook wire format", func(t *testing.T) {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"messaging_product":"whatsapp"`)
		assert.Contains(t, string(raw), `"wa_id":"918074101457"`)
	})
}

func TestSimulateOrderConfirmationReceived(t *testing.T) {
	payload := SimulateOrderConfirmationReceived("+918074101457", "a1b2c3d4")

	body := payload.Entry[0].Changes[0].Value.Messages[0].Text.Body
	assert.Contains(t, body, "Your order #a1b2c3d4 is confirmed!")
	assert.Contains(t, body, "The Mannan Crackers")
}

func TestFormatSimulatedMessage(t *testing.T) {
	payload := SimulateOrderConfirmationReceived("+918074101457", "a1b2c3d4")

	out := FormatSimulatedMessage(payload)
	assert.Contains(t, out, "SIMULATED WHATSAPP MESSAGE RECEIVED")
	assert.Contains(t, out, "From: Test User")
	assert.Contains(t, out, "Phone: +918074101457")
	assert.Contains(t, out, "Your order #a1b2c3d4 is confirmed!")

	t.Run("empty payload does not panic", func(t *testing.T) {
		out := FormatSimulatedMessage(SimulateIncomingText("+918074101457", ""))
		assert.Contains(t, out, "Message:")
	})
}
