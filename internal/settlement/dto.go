package settlement

// SettlementResponse represents the settlement view returned to the host
type SettlementResponse struct {
	*Settlement
	CostPerPersonDisplay string `json:"cost_per_person_display"`
	OutstandingDisplay   string `json:"outstanding_display"`
	Summary              string `json:"summary"`
}
