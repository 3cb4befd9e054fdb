package other

// The cart lives on the client (localStorage); the server only ever sees
// it as a checkout payload. CartItems is keyed by product ID.

type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerData struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
	UpdateProfile   bool   `json:"updateProfile"`
}

type CheckoutPayload struct {
	CustomerData CustomerData        `json:"customerData"`
	CartItems    map[string]CartItem `json:"cartItems"`
}

type OrderSummary struct {
	Customer CustomerData        `json:"customer"`
	Items    map[string]CartItem `json:"items"`
	Total    float64             `json:"total"`
	OrderID  string              `json:"order_id"`
}

// Quick order bundles: predefined lists the storefront offers for one
// click cart population.

type QuickOrderProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

type QuickOrderList struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Emoji       string              `json:"emoji"`
	Color       string              `json:"color"`
	Products    []QuickOrderProduct `json:"products"`
	Total       float64             `json:"total"`
	ItemCount   int                 `json:"item_count"`
}

type QuickOrderSelection struct {
	ListID   int                      `json:"list_id"`
	Products []QuickOrderSelectedItem `json:"products"`
}

type QuickOrderSelectedItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
