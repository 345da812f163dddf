package serpapi

import "time"

const (
	DefaultBaseURL = "https://serpapi.com"
	DefaultTimeout = 30 * time.Second

	pathSearch    = "/search"
	engineHotels  = "google_hotels"
	currencyVND   = "VND"
	countryVN     = "vn"
	languageVI    = "vi"
	dateLayout    = "2006-01-02"
	MaxHotels     = 5
	maxAmenities  = 4
)

// Budget tiers.
const (
	BudgetLuxury   = "luxury"
	BudgetMidRange = "mid_range"
	BudgetBudget   = "budget"
)

// hotelClasses maps a budget tier to the google_hotels hotel_class filter.
var hotelClasses = map[string]string{
	BudgetLuxury:   "4,5",
	BudgetBudget:   "1,2,3",
	BudgetMidRange: "2,3,4",
}

// minRatings is the lowest overall rating kept per tier.
var minRatings = map[string]float64{
	BudgetLuxury:   4.0,
	BudgetBudget:   3.0,
	BudgetMidRange: 3.5,
}

// staticKeys maps folded destination spellings to static table keys.
var staticKeys = map[string]string{
	"ha noi":      "hanoi",
	"hanoi":       "hanoi",
	"ho chi minh": "saigon",
	"sai gon":     "saigon",
	"saigon":      "saigon",
	"da nang":     "danang",
	"danang":      "danang",
	"hoi an":      "hoian",
	"sa pa":       "sapa",
	"sapa":        "sapa",
}

var staticHotels = map[string]map[string][]string{
	"hanoi": {
		BudgetLuxury: {
			"Lotte Hotel Hanoi - Đẳng cấp quốc tế 5 sao",
			"InterContinental Hanoi Westlake - View Hồ Tây tuyệt đẹp",
			"Hotel Metropole Hanoi - Lịch sử và sang trọng",
		},
		BudgetMidRange: {
			"Silk Path Hotel - Vị trí trung tâm thuận tiện",
			"Golden Silk Boutique Hotel - Phong cách boutique",
			"Hanoi La Siesta Hotel & Spa - Spa, trung tâm phố cổ",
		},
		BudgetBudget: {
			"May De Ville Old Quarter - Giá tốt ở phố cổ",
			"Hanoi Backpackers Hostel - Phố cổ, giá rẻ",
			"Golden Legend Hotel - Gần các điểm tham quan",
		},
	},
	"saigon": {
		BudgetLuxury: {
			"Park Hyatt Saigon - Luxury tại trung tâm",
			"The Reverie Saigon - Xa hoa và đẳng cấp",
			"Hotel Majestic Saigon - Lịch sử và view sông",
		},
		BudgetMidRange: {
			"Liberty Central Saigon Riverside - View sông đẹp",
			"Silverland Jolie Hotel & Spa - Boutique hiện đại",
			"Hotel Royal Saigon - Trung tâm thành phố",
		},
		BudgetBudget: {
			"Mai House Saigon - Hostel chất lượng cao",
			"Saigon Backpackers - Gặp gỡ du khách quốc tế",
			"Liberty Central Saigon Centre - Tầm trung tốt",
		},
	},
	"danang": {
		BudgetLuxury: {
			"InterContinental Danang Sun Peninsula Resort - Resort đẳng cấp",
			"Pullman Danang Beach Resort - Bãi biển riêng",
			"Hyatt Regency Danang Resort and Spa - Spa đẳng cấp quốc tế",
		},
		BudgetMidRange: {
			"Novotel Danang Premier Han River - View sông Hàn",
			"Muong Thanh Luxury Danang - Gần bãi biển",
			"Danang Golden Bay - Thiết kế độc đáo",
		},
		BudgetBudget: {
			"Danang Backpackers - Hostel gần biển",
			"Memory Hostel - Sạch sẽ và an toàn",
			"Okay Boutique Hotel - Tầm trung giá tốt",
		},
	},
	"hoian": {
		BudgetLuxury: {
			"Four Seasons Resort The Nam Hai - Resort 5 sao, view biển",
			"Anantara Hoi An Resort - Bên sông, sang trọng",
		},
		BudgetMidRange: {
			"Hoi An Historic Hotel - Trung tâm phố cổ",
			"Little Hoi An Central Boutique - Gần chợ đêm",
			"Villa Hội An Lodge - Yên tĩnh, đẹp",
		},
		BudgetBudget: {
			"Thuy Hostel Hoi An - Hostel sạch, giá rẻ",
			"Hoi An Backpackers Hostel - Trung tâm, vui vẻ",
			"Mad Monkey Hostel Hoi An - Quốc tế, giá tốt",
		},
	},
	"sapa": {
		BudgetLuxury: {
			"Hotel de la Coupole MGallery - View núi đẹp nhất Sa Pa",
			"Silk Path Grand Resort & Spa - Resort 5 sao, sang trọng",
		},
		BudgetMidRange: {
			"Sapa Relax Hotel & Spa - Spa tốt, view đẹp",
			"Pao's Sapa Leisure Hotel - Trung tâm, tiện nghi",
			"Sapa Elite Hotel - Mới, sạch sẽ",
		},
		BudgetBudget: {
			"Sapa Backpackers - Hostel vui, giá rẻ",
			"Sapa Cozy Hotel - Nhỏ xinh, giá hợp lý",
		},
	},
}

var defaultHotels = map[string][]string{
	BudgetLuxury: {
		"Khách sạn 4-5 sao địa phương - Dịch vụ cao cấp",
		"Resort nghỉ dưỡng - Không gian yên tĩnh",
		"Boutique hotel - Phong cách độc đáo",
	},
	BudgetMidRange: {
		"Khách sạn 3-4 sao - Vị trí thuận tiện",
		"Hotel boutique - Dịch vụ tốt, giá hợp lý",
		"Khách sạn trung tâm - Gần điểm tham quan",
	},
	BudgetBudget: {
		"Hostel chất lượng cao - Gặp gỡ bạn bè mới",
		"Nhà nghỉ sạch sẽ - Tiết kiệm chi phí",
		"Hotel mini - Đầy đủ tiện nghi cơ bản",
	},
}
