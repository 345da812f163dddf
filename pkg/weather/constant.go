package weather

import "time"

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	DefaultTimeout = 10 * time.Second

	pathCurrent  = "/data/2.5/weather"
	pathForecast = "/data/2.5/forecast"

	unitsMetric = "metric"
	langVI      = "vi"

	// forecastStep is the spacing of OpenWeatherMap forecast entries.
	forecastStep = 3 * time.Hour
)

// Recommendation thresholds.
const (
	coldBelow      = 10.0
	coolBelow      = 20.0
	hotAbove       = 30.0
	forecastCold   = 15.0
	humidAbove     = 80
	windyAboveMPS  = 7.0
	recommendJoin  = "; "
	noticeGoodTrip = "Thời tiết thuận lợi cho chuyến đi"
)

// Fallback advice when no live data is available.
const FallbackAdvice = "Không lấy được dữ liệu thời tiết trực tiếp. Bạn nên chuẩn bị phương án hoạt động trong nhà dự phòng, mang theo ô hoặc áo mưa và kiểm tra lại dự báo trước khi khởi hành."

// cityQueries maps canonical destinations to OpenWeatherMap query names.
var cityQueries = map[string]string{
	"hà nội":      "Hanoi,VN",
	"hồ chí minh": "Ho Chi Minh City,VN",
	"đà nẵng":     "Da Nang,VN",
	"hội an":      "Hoi An,VN",
	"huế":         "Hue,VN",
	"sa pa":       "Sa Pa,VN",
	"đà lạt":      "Da Lat,VN",
	"nha trang":   "Nha Trang,VN",
	"phú quốc":    "Phu Quoc,VN",
	"hạ long":     "Ha Long,VN",
	"ninh bình":   "Ninh Binh,VN",
	"cần thơ":     "Can Tho,VN",
	"vũng tàu":    "Vung Tau,VN",
	"quy nhơn":    "Quy Nhon,VN",
	"mũi né":      "Mui Ne,VN",
	"hà giang":    "Ha Giang,VN",
	"côn đảo":     "Con Dao,VN",
	"phong nha":   "Phong Nha,VN",
}

var (
	rainWords  = []string{"rain", "drizzle", "shower", "mưa"}
	clearWords = []string{"clear", "sunny", "quang", "nắng"}
	fogWords   = []string{"fog", "mist", "haze", "sương"}
	snowWords  = []string{"snow", "tuyết"}
)
