package domain

// PageInfo 1 基页码分页元数据；pages = ceil(total/limit)
type PageInfo struct {
	Total           int  `json:"total"`
	Pages           int  `json:"pages"`
	CurrentPage     int  `json:"currentPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}
