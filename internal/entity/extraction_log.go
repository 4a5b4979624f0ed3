package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionLog is one audit row per vision-model invocation, successful or
// not. Token counts come straight from the provider's usage block.
type ExtractionLog struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      string    `json:"company_id"`
	Username       string    `json:"username"`
	LicenceID      string    `json:"licence_id,omitempty"`
	Requests       int       `json:"requests"`
	RequestTokens  int       `json:"request_tokens"`
	ResponseTokens int       `json:"response_tokens"`
	TotalTokens    int       `json:"total_tokens"`
	Status         string    `json:"status"` // "Success" | "Failure"
	Remarks        string    `json:"remarks,omitempty"`
	Payload        []byte    `json:"payload,omitempty"` // response JSON on success
	CreatedAt      time.Time `json:"created_at"`
}
