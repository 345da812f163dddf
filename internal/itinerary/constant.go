package itinerary

// Slot texts
const (
	TextActivityMorning   = "Tham quan điểm nổi bật"
	TextActivityAfternoon = "Khám phá thêm điểm tham quan"
	TextLunch             = "Thưởng thức đặc sản địa phương"
	TextDinner            = "Ăn tối với món đặc trưng"
	TextFreeMorning       = "Thời gian tự do khám phá cá nhân"
	TextShopping          = "Mua sắm quà lưu niệm"
	TextFreeAndEasy       = "Free & Easy Day"
)

// Evening hints by destination.
const (
	EveningHanoi   = "Dạo phố cổ, bia hơi, xem múa rối nước"
	EveningHoiAn   = "Ngắm đèn lồng, dạo bến Hoài, chợ đêm"
	EveningSapa    = "Ngắm sao, cafe thưởng thức view, trà ấm"
	EveningGeneric = "Hoạt động tối phù hợp với đặc trưng địa phương"
)

// Rendering
const (
	DayHeader          = "📅 **NGÀY %d**"
	DayHeaderWithDate  = "📅 **NGÀY %d (%s)**"
	FreeAndEasySuffix  = " - " + TextFreeAndEasy
	IconMorning        = "🌅"
	IconNoon           = "🍽️"
	IconAfternoon      = "🌆"
	IconShopping       = "🛍️"
	IconEvening        = "🌃"
	NoticeWithoutDates = "ℹ️ **Lưu ý:** Bạn chưa cung cấp ngày cụ thể cho chuyến đi. Việc cung cấp ngày sẽ giúp tôi tối ưu hóa lịch trình dựa trên dự báo thời tiết thực tế. Tuy nhiên, tôi sẽ tiếp tục tạo lịch trình tổng quát cho bạn."

	ClarificationPrompt = `🤔 Mình chưa xác định được điểm đến cho chuyến đi của bạn.

Bạn muốn đi đâu? Một vài điểm đến được yêu thích ở Việt Nam:
%s

Hãy cho mình biết điểm đến, số ngày và sở thích (ẩm thực, thiên nhiên, văn hóa...) để mình lên lịch trình phù hợp nhé!`
)

// Checkpoint hours per slot in PlanningWithTime.
var checkpoints = map[Period]string{
	Morning:   "08:00",
	Noon:      "12:00",
	Afternoon: "16:00",
	Evening:   "20:00",
}

var eveningHints = map[string]string{
	"hà nội": EveningHanoi,
	"hội an": EveningHoiAn,
	"sa pa":  EveningSapa,
}

var popularDestinations = []string{
	"hà nội", "hạ long", "sa pa", "huế", "hội an", "đà nẵng", "đà lạt", "nha trang", "phú quốc", "hồ chí minh",
}
