package specialist

// Specialist names, as recorded in conversation memory.
const (
	NameFood      = "FoodAgent"
	NameLocation  = "LocationAgent"
	NameItinerary = "ItineraryAgent"
	NameBooking   = "BookingAgent"
	NameWeather   = "WeatherAgent"
	NameDefault   = "DefaultAgent"
)

// Log prefixes
const (
	LogPrefixFood      = "internal.agent.specialist.Food"
	LogPrefixLocation  = "internal.agent.specialist.Location"
	LogPrefixItinerary = "internal.agent.specialist.Itinerary"
	LogPrefixBooking   = "internal.agent.specialist.Booking"
	LogPrefixWeather   = "internal.agent.specialist.Weather"
	LogPrefixDefault   = "internal.agent.specialist.Default"
)

// Generation settings
const (
	DefaultQuantity    = 2
	CatalogTemperature = 0.3
	PlanTemperature    = 0.25
)

// Clarifications
const (
	MsgFoodNeedsDestination     = "Để tôi có thể gợi ý món ăn tốt nhất, bạn có thể cho tôi biết bạn muốn tìm hiểu ẩm thực ở đâu không?"
	MsgLocationNeedsDestination = "Để tôi có thể gợi ý địa điểm tham quan phù hợp, bạn có thể cho tôi biết bạn muốn đi đâu không?"
)

// SystemPrompt is shared by every specialist.
const SystemPrompt = `Bạn là trợ lý du lịch Việt Nam thân thiện, xưng "mình".
Luôn trả lời bằng tiếng Việt, cụ thể và thực tế. Chỉ dùng thông tin tham khảo được cung cấp khi có; nếu không có, dựa vào hiểu biết chung và nói rõ khi không chắc chắn.`

// Prompt templates
const (
	PromptFood = `Yêu cầu của khách: "%s"
Điểm đến: %s
Số lượng món ăn cần gợi ý: %d
%s
THÔNG TIN THAM KHẢO:
%s

Nhiệm vụ:
1. Chọn chính xác %d món đặc sản phù hợp nhất với yêu cầu và sở thích.
2. Với mỗi món: tên món, hương vị, quán hoặc khu vực nên thử, khoảng giá, thời điểm phù hợp, lưu ý khi thưởng thức.
3. Sắp xếp: món đặc trưng nhất trước.

Trả lời theo format:
**%d Món Ăn Đặc Sản %s:**

1. **[Tên món]** - [Thời điểm phù hợp]
   - Hương vị: ...
   - Địa điểm: ...
   - Giá cả: ...
   - Đặc biệt: ...

**💡 Gợi ý bổ sung:** ...`

	PromptLocation = `Yêu cầu của khách: "%s"
Điểm đến: %s
Số lượng địa điểm cần gợi ý: %d
%s
THÔNG TIN THAM KHẢO:
%s

Nhiệm vụ:
1. Chọn chính xác %d địa điểm phù hợp nhất với yêu cầu và sở thích.
2. Với mỗi địa điểm: mô tả ngắn, lý do phù hợp, thời gian tham quan, khung giờ lý tưởng, phí, mẹo.
3. Nhóm các điểm gần nhau và đề xuất thứ tự di chuyển hợp lý.

Trả lời theo format:
**%d Địa Điểm Tham Quan %s:**

1. **[Tên địa điểm]** - [Khung giờ lý tưởng]
   - Mô tả: ...
   - Phù hợp vì: ...
   - Thời gian: ...
   - Phí: ...
   - Lưu ý: ...

**🗺️ Đề xuất tuyến di chuyển:** ...`

	PromptItinerary = `Yêu cầu gốc: "%s"
Điểm đến: %s
Số ngày: %d
%s
THÔNG TIN TÀI NGUYÊN:
Địa điểm (%d):
%s
Ẩm thực (%d):
%s

Nhiệm vụ:
1. Dùng địa điểm cho buổi sáng/chiều và món ăn cho buổi trưa/tối, giữ các điểm gần nhau trong cùng ngày.
2. Giữ nguyên khung lịch trình bên dưới (ngày, buổi, mua sắm, ngày tự do).
3. Cân bằng tham quan và nghỉ ngơi.
%s
KHUNG LỊCH TRÌNH:
%s`

	PromptItineraryWithTime = `4. BẮT BUỘC gọi tool realtime_weather cho %s với từng ngày (%s) ở các giờ 8, 12, 16, 20.
5. Điều chỉnh hoạt động theo thời tiết: mưa → trong nhà; trên 32°C buổi trưa → nơi có điều hòa; trời đẹp → ngoài trời, chụp ảnh.
6. Thêm lời khuyên chuẩn bị (ô, kem chống nắng, áo ấm) theo dự báo.`

	PromptItineraryWithoutTime = `4. Không dùng thông tin thời tiết vì chưa có ngày cụ thể.`

	PromptDefault = `Câu hỏi của khách: "%s"
%s
Nhiệm vụ:
1. Xác định loại thông tin khách cần (tiền tệ, visa, giao thông, văn hóa, thời tiết theo mùa, ngôn ngữ, an toàn...).
2. Trả lời chính xác, hữu ích và thực tế, kèm gợi ý bổ sung nếu phù hợp.
3. Nếu câu hỏi cần chuyên gia khác (ẩm thực, địa điểm, lịch trình, khách sạn), hãy gợi ý khách hỏi cụ thể hơn.`

	ContextInterest = "Thông tin bối cảnh: Người dùng đang quan tâm đến %s."
	ContextFollowUp = "Đây là câu hỏi tiếp nối cuộc trò chuyện trước."
	ContextHistory  = "Các yêu cầu liên quan trước đó:\n%s"
	ContextPrefs    = "Sở thích: %s"
	NoReferences    = "(không có dữ liệu tham khảo)"
)

// Static fallbacks
const (
	FallbackFoodHeader     = "**%d Món Ăn Đặc Sản %s:**"
	FallbackLocationHeader = "**%d Địa Điểm Tham Quan %s:**"
	FallbackCatalogEmpty   = "Hiện mình chưa có dữ liệu chi tiết về %s. Bạn có thể hỏi người dân địa phương hoặc thử lại sau nhé!"
	FallbackResourcesFood  = "🍜 **Gợi ý ẩm thực:**"
	FallbackResourcesPlace = "🗺️ **Gợi ý địa điểm:**"
	FallbackGeneral        = "Xin lỗi, hiện mình chưa thể trả lời chi tiết câu hỏi này. Bạn có thể hỏi về ẩm thực, địa điểm, lịch trình, khách sạn hoặc thời tiết ở một điểm đến cụ thể nhé!"
)

// Booking output
const (
	BookingSummary      = "📍 **Điểm đến:** %s\n📅 **Nhận phòng:** %s → **Trả phòng:** %s (%d đêm)\n👥 **Khách:** %d người lớn%s\n💰 **Ngân sách:** %s"
	BookingChildren     = ", %d trẻ em"
	BookingLiveHeader   = "**Khách sạn đề xuất:**"
	BookingStaticHeader = "**Gợi ý khách sạn tham khảo** (chưa lấy được giá trực tuyến):"
	BookingHotelLine    = "%d. **%s** ⭐ %.1f\n   - Giá: %s\n   - Tiện ích: %s"
	BookingLinkLine     = "\n   - Đặt phòng: %s"
	BookingTips         = "💡 **Mẹo đặt phòng:** Đặt sớm để có giá tốt, kiểm tra chính sách hủy phòng và đọc đánh giá gần đây trước khi thanh toán."
)

// Weather output
const (
	WeatherCurrentLine  = "🌡️ Hiện tại: %.0f°C (cảm giác %.0f°C), %s\n💧 Độ ẩm: %d%%\n💨 Gió: %.1f m/s"
	WeatherForecastLine = "📅 Ngày %s: %.0f°C - %.0f°C, %s\n💧 Độ ẩm: %d%%\n💨 Gió: %.1f m/s"
	WeatherAdvice       = "💡 **Lời khuyên:** %s"
	WeatherNoForecast   = "📅 Ngày %s nằm ngoài phạm vi dự báo 5 ngày."
)

var budgetLabels = map[string]string{
	"luxury":    "Cao cấp",
	"mid_range": "Trung bình",
	"budget":    "Tiết kiệm",
}

const displayDate = "02/01/2006"
