package router

// Log prefixes
const (
	LogPrefixClassify    = "internal.router.Classify"
	LogPrefixLLMClassify = "internal.router.LLMRouter.Classify"
)

// Confidence levels reported for each classification stage.
const (
	ConfidencePriority   = 95
	ConfidenceKeywordMin = 55
	ConfidenceKeywordMax = 90
	ConfidenceKeywordInc = 10
	ConfidenceQuestion   = 40
	ConfidenceDefault    = 30
)

// Reasons reported alongside the intent.
const (
	ReasonPriority      = "Khớp mẫu ưu tiên cho %s"
	ReasonKeyword       = "Điểm từ khóa cao nhất (%d) cho %s"
	ReasonQuestion      = "Không có từ khóa, câu hỏi chung"
	ReasonDefault       = "Không có từ khóa, mặc định lập kế hoạch"
	ReasonEmpty         = "Tin nhắn rỗng"
	ReasonLLMConfirmed  = "LLM: %s"
	ReasonLLMFallback   = "LLM không khả dụng, dùng luật"
	ReasonLLMParseError = "LLM trả về sai định dạng, dùng luật"
)

// LLM-assisted routing
const (
	RouterTemperature = 0.1

	// Rule results at or above this confidence are not sent to the LLM.
	LLMAssistBelow = ConfidenceKeywordMin

	PromptRouterSystem = `Bạn là bộ phân loại ý định cho trợ lý du lịch Việt Nam. Phân tích tin nhắn và chọn đúng một intent.

Tin nhắn: "%s"

Các intent có thể:
1. eat: Ẩm thực, món ăn, quán ăn, đặc sản
2. visit: Địa điểm tham quan, check-in, khám phá
3. plan: Lập lịch trình, kế hoạch chuyến đi
4. book: Khách sạn, đặt phòng, chỗ ở
5. weather: Thời tiết, dự báo
6. other: Câu hỏi chung (visa, tiền tệ, phương tiện...)

Trả về JSON với format:
{
  "intent": "eat|visit|plan|book|weather|other",
  "confidence": 0-100,
  "reasoning": "Giải thích ngắn gọn"
}`
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, keeping rule result"
	ErrMsgJSONParseFailed = "Failed to parse JSON, keeping rule result"
	ErrMsgEmptyResponse   = "Empty LLM response, keeping rule result"
	ErrMsgInvalidIntent   = "LLM returned unknown intent, keeping rule result"
)
