package tables

type User struct {
	tableName struct{} `bun:"table:users,alias:u"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	ClerkID   string   `bun:"clerk_id,notnull,unique" json:"clerk_id" validate:"required"`

	FirstName   string   `bun:"first_name,notnull" json:"first_name" validate:"required,min=1,max=100"`
	LastName    string   `bun:"last_name,notnull" json:"last_name" validate:"required,min=1,max=100"`
	Email       string   `bun:"email,notnull,unique" json:"email" validate:"required,email"`
	PhoneNumber string   `bun:"phone_number,notnull,unique" json:"phone_number" validate:"required,min=10,max=20"`
	Role        UserRole `bun:"role,notnull,default:'USER'" json:"role"`
}

type UserDetails struct {
	tableName struct{} `bun:"table:user_details,alias:ud"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	ClerkID   string   `bun:"clerk_id,notnull,unique" json:"clerk_id"`

	Address string `bun:"address" json:"address,omitempty"`
	City    string `bun:"city" json:"city,omitempty"`
	State   string `bun:"state" json:"state,omitempty"`
	Country string `bun:"country" json:"country,omitempty"`
	PinCode string `bun:"pin_code" json:"pin_code,omitempty"`
}

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)
