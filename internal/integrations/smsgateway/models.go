package smsgateway

// messageResponse is the gateway reply to a send request.
type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// errorResponse is the gateway error payload.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
