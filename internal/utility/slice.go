package utility

// Contains kiểm tra một phần tử có tồn tại trong slice không
func Contains[T comparable](items []T, item T) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}
