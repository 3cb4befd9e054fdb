package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDryRunClient(t *testing.T) WhatsAppClient {
	t.Helper()
	client, err := NewWhatsAppClient(configs.WhatsAppConfig{DryRun: true})
	require.NoError(t, err)
	return client
}

func newProductionClient(t *testing.T, baseURL string) WhatsAppClient {
	t.Helper()
	client, err := NewWhatsAppClient(configs.WhatsAppConfig{
		PhoneNumberID: "123456",
		AccessToken:   "token-abc",
		APIVersion:    "v18.0",
		DryRun:        false,
		BaseURL:       baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestWhatsAppClientPhoneValidation(t *testing.T) {
	client := newDryRunClient(t)
	ctx := context.Background()

	t.Run("missing plus prefix", func(t *testing.T) {
		result := client.SendText(ctx, "919876543210", "hello")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "must start with '+'")
		assert.Equal(t, ModeDryRun, result.Mode)
	})

	t.Run("letters after plus", func(t *testing.T) {
		result := client.SendText(ctx, "+91abc543210", "hello")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "must contain only digits after '+'")
	})

	t.Run("too short", func(t *testing.T) {
		result := client.SendText(ctx, "+9198", "hello")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "must be at least 10 digits")
	})

	t.Run("formatting characters are tolerated", func(t *testing.T) {
		result := client.SendText(ctx, "+91 98765-43210", "hello")
		assert.True(t, result.Success)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		result := client.SendText(ctx, "+919876543210", "   ")
		assert.False(t, result.Success)
		assert.Equal(t, "Message body cannot be empty", result.Error)
	})
}

func TestWhatsAppClientDryRun(t *testing.T) {
	client := newDryRunClient(t)

	result := client.SendText(context.Background(), "+919876543210", "Test message")

	assert.True(t, result.Success)
	assert.Equal(t, ModeDryRun, result.Mode)
	assert.Equal(t, "Message logged (dry-run mode)", result.Message)
	assert.Equal(t, "+919876543210", result.To)
	require.NotNil(t, result.Payload)
	assert.Equal(t, "whatsapp", result.Payload.MessagingProduct)
	assert.Equal(t, "text", result.Payload.Type)
	assert.Equal(t, "Test message", result.Payload.Text.Body)
	assert.False(t, result.Payload.Text.PreviewURL)
}

func TestWhatsAppClientProduction(t *testing.T) {
	t.Run("successful send returns message id", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotPayload other.WhatsAppTextMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"messages":[{"id":"wamid.test123"}]}`))
		}))
		defer server.Close()

		client := newProductionClient(t, server.URL)
		result := client.SendText(context.Background(), "+919876543210", "Order update")

		assert.True(t, result.Success)
		assert.Equal(t, ModeProduction, result.Mode)
		assert.Equal(t, "wamid.test123", result.MessageID)
		assert.Equal(t, "/v18.0/123456/messages", gotPath)
		assert.Equal(t, "Bearer token-abc", gotAuth)
		assert.Equal(t, "whatsapp", gotPayload.MessagingProduct)
		assert.Equal(t, "Order update", gotPayload.Text.Body)
	})

	t.Run("api error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
		}))
		defer server.Close()

		client := newProductionClient(t, server.URL)
		result := client.SendText(context.Background(), "+919876543210", "Order update")

		assert.False(t, result.Success)
		assert.Equal(t, "API returned status 401", result.Error)
		assert.Contains(t, result.Details, "Invalid OAuth access token")
	})

	t.Run("timeout reported as API request timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
		}))
		defer server.Close()

		client := newProductionClient(t, server.URL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		result := client.SendText(ctx, "+919876543210", "Order update")

		assert.False(t, result.Success)
		assert.Equal(t, "API request timeout", result.Error)
	})

	t.Run("missing credentials rejected at construction", func(t *testing.T) {
		_, err := NewWhatsAppClient(configs.WhatsAppConfig{DryRun: false})
		assert.Error(t, err)
	})
}
