package dto

// UpdateUserRequest uses pointer fields so an omitted field and an explicit
// zero value are distinguishable.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
