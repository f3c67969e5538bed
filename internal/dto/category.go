package dto

type CategorizeRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

type CreateRuleRequest struct {
	Keyword  string `json:"keyword" validate:"required,min=2,max=255"`
	Category string `json:"category" validate:"required,category"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
