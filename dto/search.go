package dto

type SearchResponse struct {
	Users []UserResponse `json:"users"`
	Games []GameResponse `json:"games"`
}
