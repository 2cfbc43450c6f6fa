package request

type CreateRequestRequest struct {
	Description string `json:"description"`
}
