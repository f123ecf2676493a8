package domain

// Authority is a registered naming authority (NAAN holder).
type Authority struct {
	NAAN        int    `json:"naan"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Shoulder is a 2- or 3-character prefix partitioning an authority's
// namespace. Template is empty when the system default applies.
type Shoulder struct {
	Shoulder       string `json:"shoulder"`
	NAAN           int    `json:"naan"`
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	RedirectPrefix string `json:"redirectPrefix,omitempty"`
	Template       string `json:"template,omitempty"`
}

// Mapping is the canonical identifier-to-target record. Identifier is the
// unique "naan/assignedName" key; AssignedName includes the shoulder.
type Mapping struct {
	Identifier   string `json:"identifier"`
	NAAN         int    `json:"naan"`
	AssignedName string `json:"assignedName"`
	Shoulder     string `json:"shoulder"`
	URL          string `json:"url"`
	Who          string `json:"who,omitempty"`
	What         string `json:"what,omitempty"`
	When         string `json:"when,omitempty"`
}
