package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string    `bson:"id"`
	Fullname  string    `bson:"fullname"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Password  string    `bson:"password"` // bcrypt digest
	Roles     []string  `bson:"roles"`
	IsDeleted bool      `bson:"is_deleted"`
	CreatedAt time.Time `bson:"created_at"`
}

// Identity is the slice of a user that lives in the session after login.
type Identity struct {
	ID       string   `json:"id"`
	Fullname string   `json:"fullname"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Roles    []string `json:"roles"`
}

// IdentityOf strips a stored user down to its session identity.
func IdentityOf(u *User) *Identity {
	return &Identity{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		Phone:    u.Phone,
		Roles:    append([]string(nil), u.Roles...),
	}
}
