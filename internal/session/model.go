package session

type UserType string

const (
	TypeBuyer  UserType = "buyer"
	TypeSeller UserType = "seller"
)

// User is the session identity persisted under the session key. No token,
// no backend: authentication here is a simulation over local persistence.
type User struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Type  UserType `json:"type"`
}

// LoginForm and SignupForm are the tagged form variants validated at the
// boundary instead of an untyped field bag.
type LoginForm struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Type     UserType `json:"type" validate:"required,oneof=buyer seller"`
}

type SignupForm struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Password        string   `json:"password" validate:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" validate:"required,eqfield=Password"`
	Type            UserType `json:"type" validate:"required,oneof=buyer seller"`
	BusinessName    string   `json:"business_name" validate:"required_if=Type seller"`
}
