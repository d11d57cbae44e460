package db_models

const (
	RoleUser       = "user"
	RoleCounsellor = "counsellor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleCounsellor || role == RoleAdmin
}

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
