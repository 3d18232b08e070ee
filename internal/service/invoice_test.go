package service

import "testing"

func TestNextInvoiceNumberFormat(t *testing.T) {
	invoiceNumber, next := NextInvoiceNumber("INV", 1000)
	if invoiceNumber != "INV-001001" {
		t.Fatalf("invoice number want INV-001001 got %s", invoiceNumber)
	}
	if next != 1001 {
		t.Fatalf("next counter want 1001 got %d", next)
	}
}

func TestNextInvoiceNumberIsPure(t *testing.T) {
	first, firstNext := NextInvoiceNumber("INV", 42)
	second, secondNext := NextInvoiceNumber("INV", 42)
	if first != second || firstNext != secondNext {
		t.Fatalf("same input produced different results: %s/%d vs %s/%d", first, firstNext, second, secondNext)
	}
}

func TestNextInvoiceNumberSequence(t *testing.T) {
	counter := 999998
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		var invoiceNumber string
		invoiceNumber, counter = NextInvoiceNumber("POS", counter)
		if seen[invoiceNumber] {
			t.Fatalf("duplicate invoice number %s", invoiceNumber)
		}
		seen[invoiceNumber] = true
	}
	if counter != 1000001 {
		t.Fatalf("counter want 1000001 got %d", counter)
	}
	if !seen["POS-1000001"] {
		t.Fatalf("counter past six digits should widen, got %v", seen)
	}
}

func TestNextInvoiceNumberPadsShortCounters(t *testing.T) {
	invoiceNumber, _ := NextInvoiceNumber("INV", 7)
	if invoiceNumber != "INV-000008" {
		t.Fatalf("invoice number want INV-000008 got %s", invoiceNumber)
	}
}
