package recipeservice

type CreateAttributeRequest struct {
	Name string `json:"name"`
}
