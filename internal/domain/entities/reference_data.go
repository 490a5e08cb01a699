package entities

// UF is a Brazilian federative unit, as served by the procurement portal's
// reference-data endpoints.

type UF struct {
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// Municipality belongs to a UF; the ID is the portal/IBGE identifier.

type Municipality struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	UF   string `json:"uf"`
}
