// Package types provides type definitions for structured data used throughout the adforge system.
package types

// RecordKind identifies which input handler produced a cleaned record.
type RecordKind string

// Record kinds emitted by the input-cleaning layer.
const (
	RecordCompetitorName RecordKind = "competitor_name"
	RecordHashtag        RecordKind = "hashtag"
	RecordZipCode        RecordKind = "zip_code"
)

// CleanedRecord is a single validated input produced by the input-cleaning
// layer. The analyzers consume only Kind and Text; Original is kept for
// diagnostics.
type CleanedRecord struct {
	Kind     RecordKind `json:"input_type"`
	Text     string     `json:"processed_data"`
	Original string     `json:"original_data,omitempty"`
	Valid    bool       `json:"valid"`
}

// CompetitorRecord builds a cleaned competitor-name record.
func CompetitorRecord(text string) CleanedRecord {
	return CleanedRecord{Kind: RecordCompetitorName, Text: text, Original: text, Valid: true}
}

// HashtagRecord builds a cleaned hashtag record.
func HashtagRecord(text string) CleanedRecord {
	return CleanedRecord{Kind: RecordHashtag, Text: text, Original: text, Valid: true}
}

// ZipRecord builds a cleaned ZIP-code record.
func ZipRecord(text string) CleanedRecord {
	return CleanedRecord{Kind: RecordZipCode, Text: text, Original: text, Valid: true}
}
