package models

// RegisterUserRequest is the JSON body of POST /api/users.
//
// Fields are pointers so that an absent field can be told apart from an
// empty one: the registration pipeline reports the first missing required
// field by name, in declaration order.
type RegisterUserRequest struct {
	UserName *string `json:"user_name"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	UserName *string `json:"user_name"`
	Password *string `json:"password"`
}
