package request

type ExcludeSourceRequest struct {
	Justification string `json:"justification" binding:"required"`
}
