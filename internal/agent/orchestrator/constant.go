package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixSessions     = "internal.agent.orchestrator.sessions"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - Thông tin thời gian hiện tại]
- Hôm nay: %s (%s)
- Ngày mai: %s
- Cuối tuần này: %s đến %s
- Tuần sau bắt đầu: %s

QUY TẮC QUAN TRỌNG:
1. Nếu khách nói "ngày mai", dùng date='%s'
2. Nếu khách nói "cuối tuần", chuyến đi bắt đầu ngày '%s'
3. KHÔNG hỏi ngược lại khách về ngày tháng đã có thể suy ra
4. Format ngày LUÔN LUÔN là YYYY-MM-DD`
)

// Intent headers. Destination headers take the upper-cased destination.
const (
	HeaderEat     = "🍜 **GỢI Ý ẨM THỰC TẠI %s**"
	HeaderVisit   = "🗺️ **ĐỊA ĐIỂM THAM QUAN TẠI %s**"
	HeaderPlan    = "📋 **LỊCH TRÌNH DU LỊCH CHI TIẾT**"
	HeaderBook    = "🏨 **THÔNG TIN KHÁCH SẠN & ĐẶT PHÒNG**"
	HeaderWeather = "🌤️ **THỜI TIẾT TẠI %s**"
	HeaderOther   = "💡 **THÔNG TIN DU LỊCH TỔNG QUÁT**"
)

// User-facing messages
const (
	MsgEmptyQuery    = "⚠️ Vui lòng nhập câu hỏi của bạn."
	MsgInternalError = "Xin lỗi, đã có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại sau."
)

// Error messages
const (
	ErrMsgLoadSession = "failed to load session"
	ErrMsgSaveSession = "failed to save session"
)

// Log messages
const (
	LogMsgClassified      = "intent=%s confidence=%d reason=%s"
	LogMsgDispatch        = "dispatching to %s (destination=%q trip_length=%d start=%q)"
	LogMsgSpecialistError = "specialist %s failed: %v"
	LogMsgDegraded        = "specialist %s answered from fallback data"
	LogMsgRouterError     = "router failed, using keyword rules: %v"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)
