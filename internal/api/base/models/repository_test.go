package models

import "testing"

// TestNewPaginateResult kiểm tra cách tính tổng số trang (làm tròn lên)
func TestNewPaginateResult(t *testing.T) {
	cases := []struct {
		name      string
		itemCount int
		page      int64
		limit     int64
		total     int64
		totalPage int64
	}{
		{"chia hết", 10, 1, 10, 30, 3},
		{"có dư thì làm tròn lên", 10, 1, 10, 31, 4},
		{"trang cuối thiếu mục", 1, 4, 10, 31, 4},
		{"rỗng", 0, 1, 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]string, tc.itemCount)
			result := NewPaginateResult(items, tc.page, tc.limit, tc.total)

			if result.TotalPage != tc.totalPage {
				t.Errorf("TotalPage không khớp: muốn %d, nhận %d", tc.totalPage, result.TotalPage)
			}
			if result.ItemCount != int64(tc.itemCount) {
				t.Errorf("ItemCount không khớp: muốn %d, nhận %d", tc.itemCount, result.ItemCount)
			}
			if result.Page != tc.page || result.Limit != tc.limit || result.Total != tc.total {
				t.Errorf("Page/Limit/Total không được giữ nguyên: %+v", result)
			}
		})
	}
}
