package memory

import "time"

// Log prefixes
const (
	LogPrefixMemoryStore = "internal.memory.MemoryStore"
	LogPrefixRedisStore  = "internal.memory.RedisStore"
)

// Window sizes for RelevantContext.
const (
	RecentInteractionsLimit = 3
	RelevantHistoryLimit    = 2
)

// Stored results are cut to this many runes, followed by ResultEllipsis.
const (
	MaxResultRunes = 500
	ResultEllipsis = "..."
)

// Store defaults
const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 1000
	RedisKeyPrefix     = "travel:session:"
)

// Summary text
const (
	SummaryEmpty        = "Chưa có lịch sử trò chuyện."
	SummaryHeader       = "📝 Tóm tắt cuộc trò chuyện:"
	SummaryDestination  = "🎯 Điểm đến hiện tại: %s"
	SummaryTripLength   = "📅 Thời gian dự kiến: %s ngày"
	SummaryDates        = "📆 Ngày khởi hành: %s"
	SummaryPreferences  = "🎨 Sở thích đã biết: %s"
	SummaryLastIntent   = "🔄 Yêu cầu gần nhất: %s"
	SummaryInteractions = "💬 Tổng số tương tác: %d"
	SummaryUnknown      = "Chưa xác định"
	SummaryNone         = "Chưa có"
)

// Error messages
const (
	ErrMsgMarshalSession   = "failed to marshal session"
	ErrMsgUnmarshalSession = "failed to unmarshal session"
	ErrMsgRedisGet         = "redis get failed"
	ErrMsgRedisSet         = "redis set failed"
	ErrMsgRedisDel         = "redis del failed"
)
