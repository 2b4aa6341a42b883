package domain

import (
	"strings"
	"time"
)

// Day is one of the seven weekday tags used in a restaurant's operating hours.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
	Sunday    Day = "SUNDAY"
)

// FoldName normalizes a lookup name for case-insensitive comparison.
// Stored names carry the folded form, so the unique index enforces
// case-insensitive uniqueness directly.
func FoldName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Now returns the current time truncated to whole seconds, the precision
// every stored timestamp carries.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

type KitchenType struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Snapshot returns the value copy embedded into a restaurant at write time.
func (k KitchenType) Snapshot() KitchenTypeSnapshot {
	return KitchenTypeSnapshot{ID: k.ID, Name: k.Name, Description: k.Description}
}

// KitchenTypeSnapshot is the denormalized copy of a kitchen type stored
// inside a restaurant aggregate. The canonical row lives in kitchen_types;
// later edits to it do not propagate until the restaurant is next updated.
type KitchenTypeSnapshot struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type OperationDays struct {
	Day          Day    `bson:"day" json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	OpeningHours string `bson:"openingHours" json:"openingHours" validate:"required,datetime=15:04"`
	ClosingHours string `bson:"closingHours" json:"closingHours" validate:"required,datetime=15:04"`
}

// Restaurant is the aggregate root. It is loaded and saved as a whole;
// no partial writes ever touch the nested menu tree.
type Restaurant struct {
	ID            string              `bson:"_id" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Address       string              `bson:"address" json:"address"`
	KitchenType   KitchenTypeSnapshot `bson:"kitchenType" json:"kitchenType"`
	DaysOperation []OperationDays     `bson:"daysOperation" json:"daysOperation"`
	OwnerID       string              `bson:"ownerId" json:"ownerId"`
	IsActive      bool                `bson:"isActive" json:"isActive"`
	Menu          []MenuCategory      `bson:"menu" json:"menu"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// FindCategory returns the first category with the given id, or nil.
func (r *Restaurant) FindCategory(menuID string) *MenuCategory {
	for i := range r.Menu {
		if r.Menu[i].ID == menuID {
			return &r.Menu[i]
		}
	}
	return nil
}

// RestaurantBasic is the list projection that omits the menu tree.
type RestaurantBasic struct {
	ID            string              `bson:"_id" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Address       string              `bson:"address" json:"address"`
	KitchenType   KitchenTypeSnapshot `bson:"kitchenType" json:"kitchenType"`
	DaysOperation []OperationDays     `bson:"daysOperation" json:"daysOperation"`
	OwnerID       string              `bson:"ownerId" json:"ownerId"`
	IsActive      bool                `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type MenuCategory struct {
	ID    string     `bson:"id" json:"id"`
	Type  string     `bson:"type" json:"type"`
	Items []MenuItem `bson:"items" json:"items"`
}

// FindItem returns the first item with the given id, or nil.
func (c *MenuCategory) FindItem(itemID string) *MenuItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

type MenuItem struct {
	ID                      string  `bson:"id" json:"id"`
	Name                    string  `bson:"name" json:"name"`
	Description             string  `bson:"description,omitempty" json:"description,omitempty"`
	Price                   float64 `bson:"price" json:"price"`
	OnlyForLocalConsumption bool    `bson:"onlyForLocalConsumption" json:"onlyForLocalConsumption"`
	ImagePath               string  `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	IsActive                bool    `bson:"isActive" json:"isActive"`
}

// MenuItemWithContext is the cross-aggregate lookup result: the item plus
// its enclosing category and restaurant.
type MenuItemWithContext struct {
	MenuItem
	Category   MenuCategoryContext `json:"category"`
	Restaurant RestaurantContext   `json:"restaurant"`
}

type MenuCategoryContext struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type RestaurantContext struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UserType struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u UserType) Snapshot() UserTypeSnapshot {
	return UserTypeSnapshot{ID: u.ID, Name: u.Name, Description: u.Description}
}

// UserTypeSnapshot is the value copy embedded into a user, mirroring the
// kitchen-type snapshot inside a restaurant.
type UserTypeSnapshot struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type User struct {
	ID        string           `bson:"_id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Email     string           `bson:"email" json:"email"`
	Address   string           `bson:"address,omitempty" json:"address,omitempty"`
	UserType  UserTypeSnapshot `bson:"userType" json:"userType"`
	IsActive  bool             `bson:"isActive" json:"isActive"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}
