package entity

// Creator is a user with is_creator set. Creators are only written by the
// seeder and never mutated afterwards.
type Creator struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"-"`
	DisplayName     string    `json:"display_name"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image"`
	IsCreator       bool      `json:"is_creator"`
	SubscriberCount int       `json:"subscriber_count"`
	CreatedAt       Timestamp `json:"created_at"`
}
