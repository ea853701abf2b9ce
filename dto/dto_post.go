package dto

// CreatePostRequest carries a new post. Tags are hex object ids and are
// parsed fail-closed at the boundary.
type CreatePostRequest struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}
