package lexicon

// Destination is a canonical place name with the spellings users type for it.
type Destination struct {
	Canonical string
	Aliases   []string
}

// destinations is scanned in order; earlier entries win ties.
var destinations = []Destination{
	{Canonical: "hà nội", Aliases: []string{"hanoi", "ha noi", "thủ đô hà nội", "hn"}},
	{Canonical: "hồ chí minh", Aliases: []string{"sài gòn", "saigon", "sai gon", "tp hcm", "tphcm", "hcm", "ho chi minh"}},
	{Canonical: "sa pa", Aliases: []string{"sapa", "sa-pa"}},
	{Canonical: "đà lạt", Aliases: []string{"dalat", "da lat"}},
	{Canonical: "hội an", Aliases: []string{"hoian", "hoi an", "phố cổ hội an"}},
	{Canonical: "đà nẵng", Aliases: []string{"danang", "da nang"}},
	{Canonical: "huế", Aliases: []string{"hue", "cố đô huế"}},
	{Canonical: "nha trang", Aliases: []string{"nhatrang"}},
	{Canonical: "phú quốc", Aliases: []string{"phuquoc", "đảo phú quốc"}},
	{Canonical: "hạ long", Aliases: []string{"halong", "vịnh hạ long", "ha long bay"}},
	{Canonical: "ninh bình", Aliases: []string{"ninhbinh", "tràng an", "tam cốc"}},
	{Canonical: "vũng tàu", Aliases: []string{"vungtau"}},
	{Canonical: "quy nhơn", Aliases: []string{"quynhon", "qui nhơn"}},
	{Canonical: "mũi né", Aliases: []string{"muine", "phan thiết"}},
	{Canonical: "cần thơ", Aliases: []string{"cantho"}},
	{Canonical: "hà giang", Aliases: []string{"hagiang"}},
	{Canonical: "côn đảo", Aliases: []string{"condao"}},
	{Canonical: "phong nha", Aliases: []string{"phong nha kẻ bàng", "quảng bình"}},
	{Canonical: "mộc châu", Aliases: []string{"mocchau"}},
	{Canonical: "cát bà", Aliases: []string{"catba", "đảo cát bà"}},
}

// Destinations returns the destination table with accent-stripped variants
// of every canonical name and alias already merged into Aliases.
func Destinations() []Destination {
	out := make([]Destination, len(expanded))
	copy(out, expanded)
	return out
}

// Canonicals lists every canonical destination name in table order.
func Canonicals() []string {
	out := make([]string, 0, len(expanded))
	for _, d := range expanded {
		out = append(out, d.Canonical)
	}
	return out
}

// IsCanonical reports whether name is a canonical destination.
func IsCanonical(name string) bool {
	_, ok := canonicalSet[name]
	return ok
}
