package attrrepo

// Tables the ownership-scoped repository can be built over.
const (
	TableTags        = "tags"
	TableIngredients = "ingredients"
)
