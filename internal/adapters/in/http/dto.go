package http

import (
	"time"

	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/kitchen"
	"resto/internal/core/domain/model/menu"
	"resto/internal/core/domain/model/order"
)

// Error is the uniform error payload for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one line of an order in requests and responses.
type OrderItem struct {
	DishRef  string `json:"dishRef"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the POST /orders request body.
type NewOrder struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

// StatusUpdate is the PATCH /orders/{orderId}/status request body.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Order is the response shape of a single order. Warning is set when the
// write succeeded but the change notification could not be emitted.
type Order struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	CreatedBy   string      `json:"createdBy"`
	PreparedBy  *string     `json:"preparedBy,omitempty"`
	DeliveredBy *string     `json:"deliveredBy,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`
	Warning     string      `json:"warning,omitempty"`
}

// OrderPage is the GET /orders response: one page plus the cursor for the
// next one. NextCursor is empty on the last page.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	NextCursor string  `json:"nextCursor,omitempty"`
}

// NewKitchen is the POST /kitchens request body. MaxCooking of zero asks
// for the default capacity.
type NewKitchen struct {
	Name       string `json:"name"`
	MaxCooking int    `json:"maxCooking"`
}

// Kitchen is the response shape of a single kitchen.
type Kitchen struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MaxCooking     int       `json:"maxCooking"`
	CurrentCooking int       `json:"currentCooking"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// KitchenPage is the GET /kitchens response.
type KitchenPage struct {
	Kitchens   []Kitchen `json:"kitchens"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

// UpsertDish is the PUT /menu/dishes request body. ID is empty when
// creating a new dish.
type UpsertDish struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl"`
}

// Dish is the response shape of a single menu dish.
type Dish struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MenuPage is the GET /menu response.
type MenuPage struct {
	Dishes     []Dish `json:"dishes"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func toOrderItems(items []order.Item) []OrderItem {
	out := make([]OrderItem, len(items))
	for i, item := range items {
		out[i] = OrderItem{DishRef: item.DishRef, Quantity: item.Quantity}
	}
	return out
}

func toOrderResponse(aggregate *order.Order, warning string) Order {
	return Order{
		ID:          aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		Items:       toOrderItems(aggregate.Items()),
		Total:       aggregate.Total(),
		CreatedBy:   aggregate.CreatedBy(),
		PreparedBy:  aggregate.PreparedBy(),
		DeliveredBy: aggregate.DeliveredBy(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Warning:     warning,
	}
}

func toOrderView(view queries.OrderQueryResponse) Order {
	return Order{
		ID:          view.ID.String(),
		Status:      view.Status.String(),
		Items:       toOrderItems(view.Items),
		Total:       view.Total,
		CreatedBy:   view.CreatedBy,
		PreparedBy:  view.PreparedBy,
		DeliveredBy: view.DeliveredBy,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
		DeliveredAt: view.DeliveredAt,
	}
}

func toKitchenResponse(aggregate *kitchen.Kitchen) Kitchen {
	return Kitchen{
		ID:             aggregate.ID().String(),
		Name:           aggregate.Name(),
		MaxCooking:     aggregate.MaxCooking(),
		CurrentCooking: aggregate.CurrentCooking(),
		Active:         aggregate.Active(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toKitchenView(view queries.KitchenQueryResponse) Kitchen {
	return Kitchen{
		ID:             view.ID.String(),
		Name:           view.Name,
		MaxCooking:     view.MaxCooking,
		CurrentCooking: view.CurrentCooking,
		Active:         view.Active,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func toDishResponse(aggregate *menu.Dish) Dish {
	return Dish{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Available:   aggregate.Available(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDishView(view queries.DishQueryResponse) Dish {
	return Dish{
		ID:          view.ID.String(),
		Name:        view.Name,
		Description: view.Description,
		Price:       view.Price,
		Available:   view.Available,
		ImageURL:    view.ImageURL,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}
