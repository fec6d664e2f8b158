package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "user_id"
	KeyUserEmail CtxKey = "user_email"
	KeyActorType CtxKey = "actor_type"
)
