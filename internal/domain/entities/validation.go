package entities

// ValidationMessage is one finding from quotation validation, optionally
// pointing at the offending item.

type ValidationMessage struct {
	ItemID  string `json:"item_id,omitempty"`
	Message string `json:"message"`
}

// ValidationResult aggregates quotation-level findings. Valido reflects
// errors only; warnings and infos are advisory and can be overridden at
// finalization with a typed justification.

type ValidationResult struct {
	Valido   bool                `json:"valido"`
	Errors   []ValidationMessage `json:"errors,omitempty"`
	Warnings []ValidationMessage `json:"warnings,omitempty"`
	Infos    []ValidationMessage `json:"infos,omitempty"`
}
