package weather

import (
	"strings"
)

// Recommend turns observed weather into travel advice.
func Recommend(c Current) string {
	var recs []string

	switch {
	case c.Temperature < coldBelow:
		recs = append(recs, "mặc ấm nhiều lớp")
	case c.Temperature < coolBelow:
		recs = append(recs, "mang theo áo khoác mỏng")
	case c.Temperature > hotAbove:
		recs = append(recs, "uống đủ nước và mặc đồ thoáng mát", "tránh hoạt động ngoài trời buổi trưa")
	}

	desc := strings.ToLower(c.Description)
	switch {
	case containsAny(desc, rainWords):
		recs = append(recs, "mang ô hoặc áo mưa", "cân nhắc các hoạt động trong nhà")
	case containsAny(desc, snowWords):
		recs = append(recs, "mặc ấm và mang giày phù hợp")
	case containsAny(desc, clearWords):
		recs = append(recs, "rất hợp cho hoạt động ngoài trời", "đừng quên kem chống nắng")
	case containsAny(desc, fogWords):
		recs = append(recs, "tầm nhìn có thể hạn chế")
	}

	if c.Humidity > humidAbove {
		recs = append(recs, "trời có thể oi bức")
	}
	if c.WindSpeed > windyAboveMPS {
		recs = append(recs, "gió khá mạnh")
	}

	if len(recs) == 0 {
		return noticeGoodTrip
	}
	return strings.Join(recs, recommendJoin)
}

// ForecastRecommend turns a day summary into travel advice.
func ForecastRecommend(d DaySummary) string {
	var recs []string

	avg := (d.TempMin + d.TempMax) / 2
	switch {
	case avg < forecastCold:
		recs = append(recs, "chuẩn bị quần áo ấm")
	case avg > hotAbove:
		recs = append(recs, "ưu tiên hoạt động trong nhà vào buổi trưa")
	}

	desc := strings.ToLower(d.Description)
	switch {
	case containsAny(desc, rainWords):
		recs = append(recs, "mang đồ đi mưa")
	case containsAny(desc, clearWords):
		recs = append(recs, "ngày đẹp cho hoạt động ngoài trời")
	}

	if len(recs) == 0 {
		return noticeGoodTrip
	}
	return strings.Join(recs, recommendJoin)
}

// Fallback returns the generic advice used when live data is unavailable.
func Fallback() string {
	return FallbackAdvice
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
