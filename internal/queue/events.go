package queue

// Exchange carries every event this service emits.
const Exchange = "trade.events"

type UserRegistered struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ProductExported struct {
	ProductID string  `json:"product_id"`
	UserEmail string  `json:"user_email"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ProductImported struct {
	ProductID        string `json:"product_id"`
	UserID           string `json:"user_id"`
	ImportedQuantity int    `json:"imported_quantity"`
	Remaining        int    `json:"remaining"`
}
