package helpers

import (
	"strings"

	"github.com/google/uuid"
)

func newRef(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return prefix + "-" + id
}

func OrderNumber() string { return newRef("ORD") }

func PaymentReference() string { return newRef("PAY") }

func TransactionReference() string { return newRef("TRX") }
