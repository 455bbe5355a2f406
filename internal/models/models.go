package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:50;unique;not null"  json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	IsActive     bool   `gorm:"default:true"             json:"is_active"`
}

type Task struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:255;not null"        json:"title"`
	Description string `gorm:"size:1000"                json:"description"`
	Completed   bool   `gorm:"default:false"            json:"completed"`
	OwnerID     uint   `gorm:"index;not null"           json:"-"`
}
