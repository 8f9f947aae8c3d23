package entities

import "errors"

// Domain errors
var (
	// Provider errors
	ErrProviderUnreachable = errors.New("transcription provider unreachable")

	// Summarization errors
	ErrEmptyModelResponse = errors.New("empty response from model")
	ErrMalformedModelJSON = errors.New("malformed JSON in model response")

	// Destination errors
	ErrSheetNotFound = errors.New("sheet not found in spreadsheet")
)
