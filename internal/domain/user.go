package domain

import "time"

type User struct {
	ID          int64      `db:"id" json:"id"`
	Username    string     `db:"username" json:"username"`
	CharBalance int64      `db:"char_balance" json:"char_balance"`
	PostCount   int64      `db:"post_count" json:"post_count"`
	LastPost    *time.Time `db:"last_post" json:"last_post,omitempty"`
	LastRegen   *time.Time `db:"last_regen" json:"last_regen,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
