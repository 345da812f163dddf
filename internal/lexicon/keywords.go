package lexicon

import (
	"regexp"

	"travel-assistant/internal/model"
)

var numberWords = map[string]int{
	"một":  1,
	"hai":  2,
	"ba":   3,
	"bốn":  4,
	"tư":   4,
	"năm":  5,
	"sáu":  6,
	"bảy":  7,
	"tám":  8,
	"chín": 9,
	"mười": 10,
}

// Deictic and grammatical words. None of them is ever part of a place name.
var stopwords = []string{
	// deictic
	"đó", "đây", "đấy", "ở", "chỗ", "kia", "nào", "này", "nơi", "đâu", "ấy",
	// grammatical
	"đi", "về", "đến", "tới", "ngày", "năm", "tuần", "tháng", "thì", "sao",
	"không", "có", "gì", "được", "lại", "thế", "như", "còn", "và", "hay",
	"với", "cho", "của", "là", "mà", "nhé", "nhỉ", "ạ", "đủ", "chuyến",
	"du", "lịch", "lên", "tôi", "mình", "bạn", "muốn", "cần", "ăn", "món",
	"ngon", "quán", "chơi", "những", "các", "thêm", "nữa", "khác", "vậy",
	"the", "and", "what", "about", "how", "in", "to", "for", "trip", "day", "days",
}

var stopPhrases = []string{
	"ở đó", "ở đây", "chỗ đó", "chỗ này", "nơi đó", "nơi này",
	"như thế nào", "thế nào", "có gì hay", "thì sao", "được không",
	"đi thì đi", "sao lại thế", "có đủ không",
}

var questionMarkers = []string{
	"gì", "what", "how", "where", "khi nào", "when", "bao nhiêu", "ở đâu",
	"thế nào", "như nào", "không?", "?",
}

var followUpMarkers = []string{
	"còn", "thêm", "khác", "nữa", "other", "more", "also", "additionally",
	"what about", "how about", "còn gì", "và", "or", "hoặc",
}

var intentKeywords = map[model.Intent][]string{
	model.IntentEat: {
		"ăn", "món", "quán", "nhà hàng", "đặc sản", "ẩm thực", "bánh", "phở",
		"bún", "lẩu", "cafe", "cà phê", "hải sản", "chè", "nướng", "đồ ăn",
		"ăn uống", "bữa", "ăn vặt", "food", "eat", "restaurant", "dish",
		"street food", "cuisine",
	},
	model.IntentVisit: {
		"tham quan", "địa điểm", "chùa", "đền", "bảo tàng", "thác", "biển",
		"check-in", "check in", "ngắm", "làng", "công viên", "di tích",
		"danh lam", "thắng cảnh", "khám phá", "điểm đến", "đi chơi", "chỗ chơi",
		"phố cổ", "chợ", "núi", "hang", "đảo", "picnic", "cảnh đẹp", "sống ảo",
		"visit", "attraction", "sightseeing", "places",
	},
	model.IntentPlan: {
		"lịch trình", "lập lịch", "lên lịch", "kế hoạch", "tour", "phượt",
		"chuyến đi", "du lịch", "ngày", "cuối tuần", "ngày mai", "nghỉ lễ",
		"plan", "itinerary", "trip", "schedule", "tomorrow", "days",
	},
	model.IntentBook: {
		"khách sạn", "đặt phòng", "homestay", "resort", "villa", "nơi ở",
		"chỗ ở", "nhà nghỉ", "hostel", "lưu trú", "phòng", "đặt chỗ",
		"book", "booking", "hotel", "room", "accommodation",
	},
	model.IntentWeather: {
		"thời tiết", "dự báo", "nhiệt độ", "mưa", "nắng", "lạnh", "nóng",
		"độ ẩm", "weather", "forecast", "temperature", "rain", "sunny",
	},
	model.IntentOther: {
		"visa", "tiền tệ", "đổi tiền", "tỷ giá", "thủ tục", "hộ chiếu",
		"phương tiện", "di chuyển", "an toàn", "bảo hiểm", "sim", "ngôn ngữ",
		"kinh nghiệm", "lưu ý", "currency", "passport", "transport",
		"language", "safety",
	},
}

// priorityOrder fixes the order of the priority pass.
var priorityOrder = []model.Intent{
	model.IntentWeather,
	model.IntentBook,
	model.IntentEat,
}

var priorityPatterns = map[model.Intent][]*regexp.Regexp{
	model.IntentWeather: {
		regexp.MustCompile(`(?i)\bweather\b.*\b(in|at|tomorrow|today|this|next|for)\b`),
		regexp.MustCompile(`(?i)\b(forecast|temperature)\b`),
		regexp.MustCompile(`thời tiết`),
		regexp.MustCompile(`dự báo`),
		regexp.MustCompile(`nhiệt độ`),
		regexp.MustCompile(`(trời|có) mưa (không|chưa)`),
	},
	model.IntentBook: {
		regexp.MustCompile(`đặt\s+(phòng|khách sạn|homestay|resort|villa|chỗ)`),
		regexp.MustCompile(`(?i)\bbook(ing)?\s+(a\s+)?(room|hotel|homestay|stay)\b`),
		regexp.MustCompile(`(tìm|thuê|gợi ý)\s+(khách sạn|homestay|resort|villa|nhà nghỉ)`),
	},
	model.IntentEat: {
		regexp.MustCompile(`(ăn|món)\s+(gì|ngon)`),
		regexp.MustCompile(`quán\s+(ăn|ngon|nào|cafe|cà phê)`),
		regexp.MustCompile(`đặc sản`),
		regexp.MustCompile(`(?i)\b(where|what)\s+to\s+eat\b`),
	},
}

// PriorityPatterns returns the ordered high-precision patterns for intent.
func PriorityPatterns(intent model.Intent) []*regexp.Regexp {
	return priorityPatterns[intent]
}

// Preference keyword sets. Within a category, tags are tested in slice
// order and the first tag with a hit wins.
type PreferenceTag struct {
	Tag      string
	Keywords []string
}

var activityTags = []PreferenceTag{
	{Tag: "adventure", Keywords: []string{"phiêu lưu", "mạo hiểm", "leo núi", "trekking", "hiking", "phượt", "chinh phục", "adventure"}},
	{Tag: "cultural", Keywords: []string{"văn hóa", "lịch sử", "bảo tàng", "chùa", "đền", "di tích", "phố cổ", "cultural", "history", "museum", "temple"}},
	{Tag: "relaxation", Keywords: []string{"thư giãn", "nghỉ dưỡng", "spa", "yên tĩnh", "nghỉ ngơi", "relax", "relaxation"}},
	{Tag: "nature", Keywords: []string{"thiên nhiên", "núi", "thác", "rừng", "biển", "hồ", "ruộng bậc thang", "nature", "mountain", "beach"}},
}

var foodTags = []PreferenceTag{
	{Tag: "fine_dining", Keywords: []string{"fine dining", "nhà hàng sang trọng", "nhà hàng cao cấp", "sang trọng"}},
	{Tag: "street", Keywords: []string{"đường phố", "vỉa hè", "ăn vặt", "chợ đêm", "street food", "street"}},
	{Tag: "traditional", Keywords: []string{"truyền thống", "đặc sản", "địa phương", "món quê", "traditional", "local"}},
}

var budgetTags = []PreferenceTag{
	{Tag: model.BudgetLuxury, Keywords: []string{"luxury", "cao cấp", "sang trọng", "5 sao", "4 sao", "resort", "đắt tiền"}},
	{Tag: model.BudgetLow, Keywords: []string{"budget", "rẻ", "tiết kiệm", "bình dân", "hostel", "nhà nghỉ", "giá rẻ"}},
}

// ActivityTags returns the activity_type preference table.
func ActivityTags() []PreferenceTag { return activityTags }

// FoodTags returns the food_type preference table.
func FoodTags() []PreferenceTag { return foodTags }

// BudgetTags returns the budget preference table. mid_range applies when
// none of them match.
func BudgetTags() []PreferenceTag { return budgetTags }
