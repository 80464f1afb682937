// Package api holds the stable JSON schemas printed by the phyloframe CLI.
package api

// FormatV1 is the stable JSON schema for one entry of `phyloframe formats`.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FormatV1 struct {
	Format           string `json:"format"`
	IDOnly           bool   `json:"id_only"`
	CallerIDOnly     bool   `json:"caller_id_only"`
	AlphabetRequired bool   `json:"alphabet_required"`
	Quality          bool   `json:"quality"`
}

