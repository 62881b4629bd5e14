package models

import "time"

// Role is the closed set of account roles. Role checks always go through
// these constants, never raw strings from the request.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleReviewer  Role = "REVIEWER"
	RoleAdmin     Role = "ADMIN"
)

// IsValid reports whether the role is one of the known constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may read and evaluate any application.
func (r Role) CanReview() bool {
	return r == RoleReviewer || r == RoleAdmin
}

// CanAdminister reports whether the role may manage criteria and accounts.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

type User struct {
	UserID    int       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email;size:255;unique" json:"email"`
	Password  string    `gorm:"column:password" json:"-"`
	Role      Role      `gorm:"column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
