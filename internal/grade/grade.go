package grade

// Grade is one of five ordered quality tiers applied to both quests
// and mercenaries.
type Grade string

const (
	D Grade = "D"
	C Grade = "C"
	B Grade = "B"
	A Grade = "A"
	S Grade = "S"
)

// Order lists the grades lowest to highest. Distribution tables are
// indexed in this order.
var Order = [5]Grade{D, C, B, A, S}

// Index returns the grade's position in Order, or 0 for an unknown
// grade (degrades to the lowest tier rather than failing).
func Index(g Grade) int {
	for i, v := range Order {
		if v == g {
			return i
		}
	}
	return 0
}

// Valid reports whether g is one of the five known grades.
func Valid(g Grade) bool {
	for _, v := range Order {
		if v == g {
			return true
		}
	}
	return false
}
