package domain

import "time"

type Role string

const (
	RoleConsumer  Role = "consumer"
	RoleOrganiser Role = "organiser"
)

type User struct {
	ID                  string    `json:"id"`
	Role                Role      `json:"role"`
	Email               string    `json:"email"`
	PaymentAccountEmail string    `json:"payment_account_email"`
	Name                string    `json:"name,omitempty"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	TelegramChatID      *int64    `json:"telegram_chat_id,omitempty"`
	OrgName             string    `json:"org_name,omitempty"`
	OrgAddress          string    `json:"org_address,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (u *User) IsConsumer() bool {
	return u != nil && u.Role == RoleConsumer
}

func (u *User) IsOrganiser() bool {
	return u != nil && u.Role == RoleOrganiser
}

type CreateConsumerInput struct {
	Name                string
	Email               string
	PhoneNumber         string
	PaymentAccountEmail string
	TelegramChatID      *int64
}

type CreateOrganiserInput struct {
	OrgName             string
	OrgAddress          string
	Email               string
	PaymentAccountEmail string
}
