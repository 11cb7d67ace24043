package models

import "gorm.io/gorm"

// User is the owner of logged meals. Authentication lives outside this
// service; meals only need a stable user row to hang off.
type User struct {
	gorm.Model
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}
