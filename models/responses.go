package models

// DetailResponse is the body returned by endpoints whose only payload is a
// human-readable confirmation, e.g. DELETE /products/{id}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ErrorResponse is the standard error body. Message is safe for clients;
// internal detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is the body returned by a successful POST /login.
// The user object never includes password material.
type LoginResponse struct {
	// Message is the human-readable confirmation string.
	Message string `json:"message"`

	// Token is the compact JWS session token issued for the user.
	Token string `json:"token"`

	// User is the public representation of the authenticated account.
	User UserOut `json:"user"`
}

// OrderResponse is the body returned by a successful POST /orders.
// Order carries the stored row when the store returned one, otherwise the
// submitted payload is echoed back unchanged.
type OrderResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}
