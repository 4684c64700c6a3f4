package responses

type Lab struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CollectionMethods []string `json:"collection_methods"`
}

type Marker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type User struct {
	UserID       string `json:"user_id"`
	ClientUserID string `json:"client_user_id"`
}
