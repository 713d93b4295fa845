package model

import "github.com/tessro/gplay/internal/wire"

// Response codes returned in MutationResult.ResponseCode.
const (
	ResponseCodeOK               = "OK"
	ResponseCodeConflict         = "CONFLICT"
	ResponseCodeInvalidRequest   = "INVALID_REQUEST"
	ResponseCodeMetadataTooLarge = "METADATA_TOO_LARGE"
	ResponseCodeNotFound         = "NOT_FOUND"
)

const (
	mutationFieldID           = "id"
	mutationFieldClientID     = "client_id"
	mutationFieldResponseCode = "response_code"
)

// MutationResult is the outcome of a single write-style API call.
// Any field may be empty depending on the outcome.
type MutationResult struct {
	ID           string
	ClientID     string
	ResponseCode string
}

// Succeeded returns true if the API reported success.
func (m MutationResult) Succeeded() bool {
	return m.ResponseCode == ResponseCodeOK
}

// MarshalJSON encodes the result with its wire field names.
func (m MutationResult) MarshalJSON() ([]byte, error) {
	return wire.Encode(
		wire.Field{Name: mutationFieldID, Value: m.ID},
		wire.Field{Name: mutationFieldClientID, Value: m.ClientID},
		wire.Field{Name: mutationFieldResponseCode, Value: m.ResponseCode},
	)
}

// UnmarshalJSON decodes a possibly partial result. Missing fields stay empty.
func (m *MutationResult) UnmarshalJSON(data []byte) error {
	obj, err := wire.Decode(data)
	if err != nil {
		return err
	}

	var r MutationResult
	if err := obj.String(mutationFieldID, &r.ID); err != nil {
		return err
	}
	if err := obj.String(mutationFieldClientID, &r.ClientID); err != nil {
		return err
	}
	if err := obj.String(mutationFieldResponseCode, &r.ResponseCode); err != nil {
		return err
	}

	*m = r
	return nil
}
