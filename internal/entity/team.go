package entity

// TeamMember is landing-page content (core team and mentors). It lives in
// the seed catalog only and is never written through the gateway.
type TeamMember struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Bio      string   `json:"bio"`
	ImageURL string   `json:"imageUrl"`
	Year     string   `json:"year"`
	Skills   []string `json:"skills"`
}
