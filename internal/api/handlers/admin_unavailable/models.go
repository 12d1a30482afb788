package admin_unavailable

// AddSlotsResponse reports a successful batch block.
type AddSlotsResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// RemoveSlotsResponse reports a successful batch unblock.
type RemoveSlotsResponse struct {
	Success bool `json:"success"`
}
