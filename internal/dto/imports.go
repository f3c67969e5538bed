package dto

// ImportRow is one normalized tabular record before parsing. Empty strings
// mean the column was absent.
type ImportRow struct {
	Line        int
	Date        string
	Description string
	Amount      string
	Currency    string
	Category    string
	Type        string
}

type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported   int              `json:"imported"`
	Skipped    int              `json:"skipped"`
	Duplicates int              `json:"duplicates"`
	Errors     []ImportRowError `json:"errors"`
}

type ImportOptions struct {
	Dedupe bool
}
