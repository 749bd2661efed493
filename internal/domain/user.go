package domain

import "time"

// UserRole - роль сотрудника
type UserRole string

const (
	UserRoleManager   UserRole = "manager"
	UserRoleAdmin     UserRole = "admin"
	UserRoleSuperuser UserRole = "superuser"
)

// IsValid проверяет, что роль известна
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleManager, UserRoleAdmin, UserRoleSuperuser:
		return true
	}
	return false
}

// User - сотрудник бэк-офиса
type User struct {
	ID             int64     `json:"id" db:"id"`
	FullName       string    `json:"full_name" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	Role           UserRole  `json:"role" db:"role"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Коды встроенных правил доступа
const (
	RuleRoutesManage    = "routes.manage"
	RuleBookingsManage  = "bookings.manage"
	RuleUsersManage     = "users.manage"
	RuleRulesManage     = "rules.manage"
	RuleTariffsManage   = "tariffs.manage"
	RuleReviewsModerate = "reviews.moderate"
)

// Rule - правило доступа; может быть привязано к роли,
// тогда выдаётся всем пользователям этой роли автоматически
type Rule struct {
	ID             int64     `json:"id" db:"id"`
	AssociatedRole *UserRole `json:"associated_role" db:"associated_role"`
	Code           string    `json:"code" db:"code"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	ErrorMessage   *string   `json:"error_message" db:"error_message"`
}
