package model

import "time"

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

type Contact struct {
	ID        uint64    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:128"`
	Email     string    `gorm:"column:email;size:128"`
	Subject   string    `gorm:"column:subject;size:255"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status;size:16;index;default:new"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Contact) TableName() string { return "contacts" }

type Profile struct {
	ID        uint64    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:128"`
	Email     string    `gorm:"column:email;uniqueIndex;size:128"`
	Phone     string    `gorm:"column:phone;size:32"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Profile) TableName() string { return "profiles" }
