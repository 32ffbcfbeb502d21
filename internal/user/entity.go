package user

import (
	"time"

	"github.com/google/uuid"
)

// LocalUserID identifies the standing local account every unauthenticated
// request is attributed to. Identity resolution proper happens upstream.
var LocalUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
