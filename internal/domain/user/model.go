package user

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles - допустимые роли в порядке отображения
var Roles = []string{RoleUser, RoleAdmin}

// Record - пользователь в том виде, в каком его отдает бэкенд
type Record struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsValidRole проверяет, известна ли роль
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
