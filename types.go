package arkpid

// MintRequest is the JSON body accepted by the mint endpoint.
type MintRequest struct {
	NAAN     int    `json:"naan"`
	Shoulder string `json:"shoulder"`
	URL      string `json:"url"`
	Who      string `json:"who,omitempty"`
	What     string `json:"what,omitempty"`
	When     string `json:"when,omitempty"`
	Template string `json:"template,omitempty"`
}

// MintResponse is returned on a successful mint.
type MintResponse struct {
	ARK        string `json:"ark"`
	Identifier string `json:"identifier"`
	URL        string `json:"url"`
}

// AuditEntry describes one identifier that failed check-digit validation.
type AuditEntry struct {
	Identifier string `json:"identifier"`
	Expected   string `json:"expected"`
	Actual     string `json:"actual"`
}

// AuditReport summarizes a batch check-digit audit.
type AuditReport struct {
	Total        int          `json:"total"`
	Valid        int          `json:"valid"`
	Invalid      int          `json:"invalid"`
	NoCheckDigit int          `json:"noCheckDigit"`
	InvalidARKs  []AuditEntry `json:"invalidArks,omitempty"`
}

// AuditDetail is the result of auditing a single identifier.
type AuditDetail struct {
	ARK      string `json:"ark"`
	Shoulder string `json:"shoulder"`
	Template string `json:"template"`
	FullID   string `json:"fullId"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Valid    bool   `json:"valid"`
}
