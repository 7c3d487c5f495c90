// Package models chứa các kiểu dùng chung cho layer repository/base.
// Các danh sách lớn (videos, channels, users) đều trả về qua PaginateResult
// thay vì trả nguyên mảng.
package models

// PaginateResult là một trang kết quả của các endpoint liệt kê
// (GET /videos, GET /channels, ...)
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // số mục trong trang này
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// NewPaginateResult dựng một trang kết quả từ dữ liệu đã query.
// page và limit phải đã được chuẩn hóa (page >= 1, limit > 0).
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	// Tổng số trang: làm tròn lên
	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}
}

// CountResult là kết quả của các endpoint đếm document
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}
