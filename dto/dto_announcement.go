package dto

type CreateAnnouncementRequest struct {
	Announcement string `json:"announcement"`
}
