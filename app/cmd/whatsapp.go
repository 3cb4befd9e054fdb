package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/mannancrackers/shop/app/utils/format"
	"github.com/urfave/cli/v3"
)

const defaultTestMessage = "Hello! This is a test message from WhatsApp Cloud API integration."

func whatsAppTestCommand() *cli.Command {
	return &cli.Command{
		Name:  "whatsapp-test",
		Usage: "Test the WhatsApp integration with dry-run, production or simulated messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "phone",
				Usage: "phone number to send the test message to (e.g., +918074101457)",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "order ID to send order notifications for",
			},
			&cli.StringFlag{
				Name:  "message",
				Value: defaultTestMessage,
				Usage: "custom test message",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: "dry-run",
				Usage: "dry-run (logs only) or production (actual API call)",
			},
			&cli.BoolFlag{
				Name:  "simulate",
				Usage: "simulate receiving a WhatsApp message instead of sending one",
			},
			&cli.BoolFlag{
				Name:  "raw-json",
				Usage: "show the raw webhook payload in simulation mode",
			},
		},
		Action: runWhatsAppTest,
	}
}

func runWhatsAppTest(ctx context.Context, c *cli.Command) error {
	cfg := configs.LoadWhatsAppConfig(configs.LoadENV)

	divider := strings.Repeat("=", 70)
	fmt.Println()
	fmt.Println(divider)
	fmt.Println("WhatsApp Integration Test Tool")
	fmt.Println(divider)
	fmt.Println()

	printWhatsAppSettings(cfg)

	if c.Bool("simulate") {
		return runWhatsAppSimulation(c)
	}

	switch c.String("mode") {
	case "dry-run":
		cfg.DryRun = true
	case "production":
		cfg.DryRun = false
		if err := confirmProductionMode(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %q, want dry-run or production", c.String("mode"))
	}

	client, err := services.NewWhatsAppClient(cfg)
	if err != nil {
		return err
	}

	if orderID := c.String("order"); orderID != "" {
		return testOrderNotifications(ctx, cfg, client, orderID)
	}
	if phone := c.String("phone"); phone != "" {
		return testDirectMessage(ctx, client, phone, c.String("message"))
	}

	printWhatsAppUsage()
	return nil
}

func printWhatsAppSettings(cfg configs.WhatsAppConfig) {
	orNotSet := func(s string) string {
		if s == "" {
			return "NOT SET"
		}
		return s
	}

	fmt.Println("Current Configuration:")
	fmt.Printf("  DRY_RUN: %t\n", cfg.DryRun)
	fmt.Printf("  NOTIFICATIONS_ENABLED: %t\n", cfg.Enabled)
	fmt.Printf("  Phone Number ID: %s\n", orNotSet(cfg.PhoneNumberID))
	fmt.Printf("  Admin Number: %s\n", orNotSet(cfg.AdminPhone))
	fmt.Printf("  API Version: %s\n", cfg.APIVersion)
	fmt.Println()
}

func confirmProductionMode() error {
	fmt.Println("⚠️  WARNING: You are testing in PRODUCTION mode!")
	fmt.Println("This will send ACTUAL WhatsApp messages.")
	fmt.Print("Are you sure? (yes/no): ")

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		return errors.New("test cancelled")
	}

	fmt.Printf("✓ Proceeding with production test\n\n")
	return nil
}

func runWhatsAppSimulation(c *cli.Command) error {
	fmt.Println("🎭 SIMULATION MODE (No Real Messages Sent)")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()

	phone := c.String("phone")
	if phone == "" {
		phone = "+918074101457"
	}
	orderCode := c.String("order")
	if orderCode == "" {
		orderCode = "123"
	}

	fmt.Println("Simulating incoming WhatsApp message from customer...")

	payload := services.SimulateOrderConfirmationReceived(phone, orderCode)
	fmt.Print(services.FormatSimulatedMessage(payload))

	if c.Bool("raw-json") {
		raw, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		divider := strings.Repeat("=", 70)
		fmt.Println()
		fmt.Println(divider)
		fmt.Println("📋 RAW WEBHOOK PAYLOAD (JSON)")
		fmt.Println(divider)
		fmt.Println(string(raw))
		fmt.Println(divider)
	}

	fmt.Println("✅ Simulation complete! This is what a WhatsApp message would look like.")
	return nil
}

func testOrderNotifications(ctx context.Context, cfg configs.WhatsAppConfig, client services.WhatsAppClient, orderID string) error {
	db, err := configs.OpenConnection()
	if err != nil {
		return err
	}

	order, err := repositories.NewOrderRepository(db).GetOrderByIDWithRelations(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order with ID %s not found", orderID)
	}

	fmt.Printf("Testing order notifications for Order #%s\n\n", order.Code())
	fmt.Printf("Customer: %s\n", order.FullName)
	fmt.Printf("Email: %s\n", order.Email)
	fmt.Printf("Phone: %s\n", order.Phone)
	fmt.Printf("Total: %s\n\n", format.PlainINR(order.TotalAmount))

	fmt.Printf("Sending notifications...\n\n")

	results := services.NewNotificationService(client, cfg).SendOrderNotifications(ctx, order)

	fmt.Printf("Order ID: %s\n", results.OrderID)
	fmt.Printf("Timestamp: %s\n", results.Timestamp.Format(time.RFC3339))

	fmt.Println()
	fmt.Println("📱 Customer Notification:")
	printNotificationResult(results.Customer)

	fmt.Println()
	fmt.Println("👨‍💼 Admin Notification:")
	printNotificationResult(results.Admin)
	return nil
}

func testDirectMessage(ctx context.Context, client services.WhatsAppClient, phone, message string) error {
	fmt.Printf("Testing message to: %s\n\n", phone)
	fmt.Printf("Message: %s\n\n", message)

	printSendResult(client.SendText(ctx, phone, message))
	return nil
}

func printSendResult(result *services.SendResult) {
	if result.Success {
		fmt.Println("✅ SUCCESS")
		fmt.Printf("  Mode: %s\n", result.Mode)
		if result.Mode == services.ModeDryRun {
			fmt.Println("  Status: Message logged (no API call)")
		} else {
			fmt.Printf("  Message ID: %s\n", result.MessageID)
		}
		if result.Payload != nil {
			pretty, _ := json.MarshalIndent(result.Payload, "", "    ")
			fmt.Println()
			fmt.Println("  Payload:")
			for _, line := range strings.Split(string(pretty), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	} else {
		fmt.Println("❌ FAILED")
		fmt.Printf("  Error: %s\n", result.Error)
		if result.Details != "" {
			fmt.Printf("  Details: %s\n", result.Details)
		}
	}
	fmt.Println()
}

func printNotificationResult(result *services.SendResult) {
	recipient := result.RecipientType
	if recipient == "" {
		recipient = "unknown"
	}
	recipient = strings.ToUpper(recipient[:1]) + recipient[1:]

	to := result.To
	if to == "" {
		to = "N/A"
	}

	if result.Success {
		fmt.Printf("  ✅ %s (%s)\n", recipient, to)
		fmt.Printf("     Mode: %s\n", result.Mode)
		if result.Mode == services.ModeDryRun {
			fmt.Println("     Status: Logged (no API call)")
		} else {
			fmt.Printf("     Message ID: %s\n", result.MessageID)
		}
	} else {
		fmt.Printf("  ❌ %s (%s)\n", recipient, to)
		fmt.Printf("     Error: %s\n", result.Error)
	}
}

func printWhatsAppUsage() {
	fmt.Println("Usage:")
	fmt.Println()
	fmt.Println("1. Send test message to your phone (dry-run):")
	fmt.Println("   shop whatsapp-test --phone +918074101457")
	fmt.Println()
	fmt.Println("2. Send order notifications (dry-run):")
	fmt.Println("   shop whatsapp-test --order <order-id>")
	fmt.Println()
	fmt.Println("3. Send custom message (dry-run):")
	fmt.Println("   shop whatsapp-test --phone +918074101457 --message \"Custom message\"")
	fmt.Println()
	fmt.Println("4. 🎭 SIMULATE receiving a message (no sending):")
	fmt.Println("   shop whatsapp-test --simulate --phone +918074101457")
	fmt.Println()
	fmt.Println("5. Show raw JSON payload of the simulated message:")
	fmt.Println("   shop whatsapp-test --simulate --raw-json")
	fmt.Println()
	fmt.Println("6. Production mode (actual API call):")
	fmt.Println("   shop whatsapp-test --phone +918074101457 --mode production")
	fmt.Println()
	fmt.Println("Note: set WHATSAPP_DRY_RUN=false in .env to enable production API calls")
	fmt.Println()
}
