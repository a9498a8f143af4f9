package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"metalshop/internal/infrastructure/config"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(config.PaymentsConfig{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.PaymentsConfig{MockMode: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return fixed }}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":150.5,"external_reference":"JOB-2026-0001"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("expected approved with id, got %q %q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("expected json response, got %v", err)
	}
	if resp["external_reference"] != "JOB-2026-0001" || resp["status_detail"] != "accredited" {
		t.Fatalf("expected request echoed back, got %v", resp)
	}
	if resp["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("expected approval stamp, got %v", resp["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
