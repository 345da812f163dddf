package specialist

const (
	AnswerCurrency = `💰 **Tiền tệ Việt Nam:**
- Đơn vị: Đồng Việt Nam (VND)
- Ký hiệu: ₫ hoặc VND
- Mệnh giá: 10.000₫, 20.000₫, 50.000₫, 100.000₫, 200.000₫, 500.000₫
- Tỷ giá: khoảng 23.000-25.000 VND = 1 USD (thay đổi)
- Đổi tiền: ngân hàng, tiệm vàng, sân bay
- Thẻ ATM: được chấp nhận rộng rãi ở thành phố lớn`

	AnswerVisa = `📋 **Visa Việt Nam:**
- **Miễn visa 45 ngày:** 13 quốc gia (Đức, Pháp, Anh, Ý, Tây Ban Nha...)
- **Miễn visa 30 ngày:** ASEAN, Nhật Bản, Hàn Quốc, Nga...
- **E-visa:** đăng ký online, 30 ngày, 1 lần nhập cảnh
- **Visa du lịch:** 30 ngày, có thể gia hạn
- **Yêu cầu:** hộ chiếu còn hạn 6 tháng, vé máy bay khứ hồi
- **Website chính thức:** evisa.xuatnhapcanh.gov.vn`

	AnswerTransport = `🚗 **Giao thông Việt Nam:**
- **Máy bay:** nội địa giá rẻ (VietJet, Bamboo Airways)
- **Tàu hỏa:** Bắc-Nam, cabin giường nằm, cảnh đẹp
- **Xe khách:** giường nằm, rẻ nhất, nhiều tuyến
- **Grab/Gojek:** xe ôm, taxi ở thành phố
- **Xe máy:** thuê 150.000-300.000₫/ngày
- **Ô tô:** cần bằng lái quốc tế
- **Xe bus:** rẻ nhưng chậm, phù hợp ngân sách thấp`

	AnswerSeasons = `🌤️ **Thời tiết Việt Nam:**
- **Miền Bắc:** 4 mùa rõ rệt
  - Xuân (3-4): ấm áp, mưa phùn
  - Hè (5-8): nóng ẩm, mưa lớn
  - Thu (9-11): mát mẻ, đẹp nhất
  - Đông (12-2): lạnh, khô
- **Miền Trung:** 2 mùa
  - Khô (1-8): nắng nóng
  - Mưa (9-12): mưa bão nhiều
- **Miền Nam:** nhiệt đới
  - Khô (11-4): ít mưa, mát
  - Mưa (5-10): mưa chiều, nóng ẩm`
)

var staticTopics = []struct {
	keywords []string
	answer   string
}{
	{[]string{"tiền tệ", "tỷ giá", "đổi tiền", "vnd", "currency", "money"}, AnswerCurrency},
	{[]string{"visa", "thị thực", "nhập cảnh"}, AnswerVisa},
	{[]string{"giao thông", "di chuyển", "phương tiện", "transport", "transportation"}, AnswerTransport},
	{[]string{"thời tiết", "khí hậu", "mùa nào", "weather", "climate"}, AnswerSeasons},
}
