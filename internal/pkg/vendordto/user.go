package vendordto

type User struct {
	UserID       string `json:"user_id"`
	ClientUserID string `json:"client_user_id"`
}

type UserList struct {
	Users []User `json:"users"`
}
