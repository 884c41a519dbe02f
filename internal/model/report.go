package model

// BursaryReport aggregates payments for a session. The report is expensive
// to compute and is cached in Redis with a short TTL.
type BursaryReport struct {
	Session        string              `json:"session"`
	TotalConfirmed float64             `json:"total_confirmed"`
	TotalPending   float64             `json:"total_pending"`
	TotalFailed    float64             `json:"total_failed"`
	ByPurpose      []PurposeBreakdown  `json:"by_purpose"`
	ByMonth        []MonthlyBreakdown  `json:"by_month"`
	GeneratedAt    string              `json:"generated_at"`
}

// PurposeBreakdown sums confirmed payments for one purpose.
type PurposeBreakdown struct {
	Purpose PaymentPurpose `json:"purpose"`
	Count   int            `json:"count"`
	Amount  float64        `json:"amount"`
}

// MonthlyBreakdown sums confirmed payments for one calendar month ("2026-01").
type MonthlyBreakdown struct {
	Month  string  `json:"month"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}
