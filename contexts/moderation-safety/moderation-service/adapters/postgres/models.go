package postgres

import "time"

// The moderation repository reads and writes the tables owned by the
// identity and product adapters, so these models mirror their schemas.

type productModel struct {
	ProductID   string     `gorm:"column:product_id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Author      string     `gorm:"column:author"`
	Description string     `gorm:"column:description"`
	CoverURL    string     `gorm:"column:cover_url"`
	OwnerID     *string    `gorm:"column:owner_id"`
	Cloneable   bool       `gorm:"column:cloneable"`
	LikesCount  int64      `gorm:"column:likes_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
}

func (productModel) TableName() string { return "products" }

type userModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Surname   string    `gorm:"column:surname"`
	Email     string    `gorm:"column:email"`
	IsAdmin   bool      `gorm:"column:is_admin"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	Token  string `gorm:"column:token;primaryKey"`
	UserID string `gorm:"column:user_id"`
}

func (sessionModel) TableName() string { return "sessions" }
