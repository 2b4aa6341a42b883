package domain

// Request payloads. Validation tags are checked at the handler edge;
// semantic checks (uniqueness, references) live in the services.

type KitchenTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// KitchenTypeRef names a kitchen type by either identifier shape. When ID
// is set it wins; otherwise the case-insensitive name lookup applies.
type KitchenTypeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IDOrName collapses the reference into the single key Resolve accepts.
func (r KitchenTypeRef) IDOrName() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

type RestaurantRequest struct {
	Name          string          `json:"name" validate:"required"`
	Address       string          `json:"address" validate:"required"`
	KitchenType   KitchenTypeRef  `json:"kitchenType" validate:"required"`
	DaysOperation []OperationDays `json:"daysOperation" validate:"dive"`
	OwnerID       string          `json:"ownerId"`
	IsActive      *bool           `json:"isActive"`
	// Menu == nil preserves the stored menu on update; an empty slice
	// replaces it with nothing.
	Menu []MenuCategoryPayload `json:"menu"`
}

// MenuCategoryPayload is a category supplied inside a restaurant request.
// A client-supplied ID is preserved; a missing one is generated.
type MenuCategoryPayload struct {
	ID    string            `json:"id"`
	Type  string            `json:"type" validate:"required"`
	Items []MenuItemPayload `json:"items" validate:"dive"`
}

type MenuItemPayload struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name" validate:"required"`
	Description             string  `json:"description"`
	Price                   float64 `json:"price" validate:"gt=0"`
	OnlyForLocalConsumption *bool   `json:"onlyForLocalConsumption"`
	ImagePath               string  `json:"imagePath"`
	IsActive                *bool   `json:"isActive"`
}

type MenuCategoryRequest struct {
	Type string `json:"type" validate:"required"`
}

// MenuItemRequest carries the two booleans as pointers: null preserves the
// stored value on update, every other field is overwritten as supplied.
type MenuItemRequest struct {
	Name                    string  `json:"name" validate:"required"`
	Description             string  `json:"description"`
	Price                   float64 `json:"price" validate:"gt=0"`
	OnlyForLocalConsumption *bool   `json:"onlyForLocalConsumption"`
	ImagePath               string  `json:"imagePath"`
	IsActive                *bool   `json:"isActive"`
}

type UserTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UserTypeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r UserTypeRef) IDOrName() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

type UserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Address  string      `json:"address"`
	UserType UserTypeRef `json:"userType" validate:"required"`
	IsActive *bool       `json:"isActive"`
}

// ErrorBody is the error envelope every non-2xx response carries.
type ErrorBody struct {
	Errors []string `json:"errors"`
	Status int      `json:"status"`
}
