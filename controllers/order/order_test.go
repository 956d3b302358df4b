package orderControllers

import (
	"strings"
	"testing"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
)

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "cancelled"} {
		got, err := mapOrderStatus(valid)
		if err != nil {
			t.Fatalf("mapOrderStatus(%q) error: %v", valid, err)
		}
		if string(got) != valid {
			t.Fatalf("mapOrderStatus(%q) = %q", valid, got)
		}
	}

	if _, err := mapOrderStatus("shipped-to-mars"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestMapPaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "failed", "refunded"} {
		if _, err := mapPaymentStatus(valid); err != nil {
			t.Fatalf("mapPaymentStatus(%q) error: %v", valid, err)
		}
	}

	if _, err := mapPaymentStatus("iou"); err == nil {
		t.Fatal("expected error for unknown payment status")
	}

	if got, _ := mapPaymentStatus("paid"); got != models.PaymentStatusPaid {
		t.Fatalf("got %q, want %q", got, models.PaymentStatusPaid)
	}
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	if a == b {
		t.Fatal("order refs must be unique")
	}
	if !strings.Contains(a, "-") {
		t.Fatalf("unexpected ref format: %q", a)
	}
}
