package models

type AddCartItemRequest struct {
	ID        string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	IsMembers bool   `json:"isMembers"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type MembersAccessRequest struct {
	Code string `json:"code" binding:"required"`
}

type MembersAccessResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type CartResponse struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"totalItems"`
}

func NewCartResponse(cart *Cart) CartResponse {
	return CartResponse{
		Items:      cart.Items,
		TotalItems: cart.TotalItems(),
	}
}
