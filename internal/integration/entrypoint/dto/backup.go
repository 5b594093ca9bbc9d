// Package dto defines data transfer objects for API requests and responses.
package dto

// ImportBackupResponse represents the response for a successful backup import.
type ImportBackupResponse struct {
	Version  int      `json:"version"`
	Imported []string `json:"imported"`
}

// PartialImportResponse represents the response for an import that stopped midway.
type PartialImportResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Written []string `json:"written"`
}
