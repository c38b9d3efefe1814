package dto

// CreateBillingRequest carries the client-supplied fields for a new
// billing service. Amount is a pointer so a missing amount can be
// rejected rather than silently stored as zero.
type CreateBillingRequest struct {
	ProjectID string   `json:"projectId"`
	Name      string   `json:"name"`
	Amount    *float64 `json:"amount"`
	DueDate   *string  `json:"dueDate"`
	Paid      bool     `json:"paid"`
}

// UpdateBillingRequest is a partial-merge patch. An absent or empty
// projectId must not erase the existing binding.
type UpdateBillingRequest struct {
	ProjectID *string  `json:"projectId"`
	Name      *string  `json:"name"`
	Amount    *float64 `json:"amount"`
	DueDate   *string  `json:"dueDate"`
	Paid      *bool    `json:"paid"`
}
