package clover

import "fmt"

// Category is a Clover item category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a Clover inventory item. The payload is vendor-owned and kept as
// raw key/value data so it can be stored and returned unchanged.
type Item map[string]any

// ID returns the item identifier, or "" when absent.
func (i Item) ID() string {
	v, ok := i["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Categories returns the expanded category list of an item fetched with
// expand=categories. The payload shape is {"categories": {"elements": [...]}}.
func (i Item) Categories() []Category {
	wrapper, ok := i["categories"].(map[string]any)
	if !ok {
		return nil
	}
	elements, ok := wrapper["elements"].([]any)
	if !ok {
		return nil
	}
	categories := make([]Category, 0, len(elements))
	for _, e := range elements {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		c := Category{}
		c.ID, _ = m["id"].(string)
		c.Name, _ = m["name"].(string)
		categories = append(categories, c)
	}
	return categories
}

// Order is a Clover order, kept as raw vendor data.
type Order map[string]any

// ID returns the order identifier, or "" when absent.
func (o Order) ID() string {
	return Item(o).ID()
}

// Merchant is the subset of the Clover merchant resource this service keeps.
type Merchant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}

type elements[T any] struct {
	Elements []T `json:"elements"`
}

type errorBody struct {
	Message string `json:"message"`
}
