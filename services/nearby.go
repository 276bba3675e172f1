package services

import (
	"math"
	"math/rand"
)

// kmPerDegree là số km trên một độ vĩ tuyến
const kmPerDegree = 111.0

// BoundingBox tính hình chữ nhật lat/lon xấp xỉ bán kính radiusKm quanh một
// tọa độ. Xấp xỉ equirectangular, chỉ đúng cho khoảng cách ngắn; gần hai cực
// cos(lat) tiến về 0 nên delta kinh độ phình ra — giới hạn đã biết, giữ nguyên.
func BoundingBox(latitude, longitude, radiusKm float64) (latMin, latMax, lonMin, lonMax float64) {
	latDelta := radiusKm / kmPerDegree
	lonDelta := radiusKm / (kmPerDegree * math.Abs(math.Cos(latitude*math.Pi/180)))

	return latitude - latDelta, latitude + latDelta, longitude - lonDelta, longitude + lonDelta
}

// SampleApartments chọn ngẫu nhiên không lặp lại min(len(ids), k) phần tử.
// Nguồn ngẫu nhiên do caller truyền vào theo từng request, các lần gọi
// độc lập với nhau.
func SampleApartments(r *rand.Rand, ids []uint, k int) []uint {
	if k > len(ids) {
		k = len(ids)
	}
	if k < 0 {
		k = 0
	}

	picked := make([]uint, len(ids))
	copy(picked, ids)
	r.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:k]
}
