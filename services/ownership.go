package services

// IsOwner kiểm tra caller có phải chủ sở hữu resource không.
// Caller ẩn danh (id 0) không bao giờ có quyền sửa đổi.
func IsOwner(callerID, ownerID uint) bool {
	if callerID == 0 {
		return false
	}
	return callerID == ownerID
}
