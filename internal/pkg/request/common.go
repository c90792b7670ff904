package request

// ListParams holds the pagination query parameters shared by list
// endpoints. Zero values are normalized by the services.
type ListParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}
