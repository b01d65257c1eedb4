package confirm_payment

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	Amount *float64 `json:"amount,omitempty"` // Фактически оплаченная сумма (опционально)
}
