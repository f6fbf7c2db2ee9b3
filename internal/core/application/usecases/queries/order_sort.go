package queries

import "strings"

// OrderSort is the sort key of the order listing, as accepted in the "ordenar"
// parameter: id, paciente, prazo or status, optionally prefixed with "-" for
// descending order.
type OrderSort struct {
	key  string
	desc bool
}

// DefaultOrderSort lists the newest orders first.
var DefaultOrderSort = OrderSort{key: "id", desc: true}

func getOrderSortColumns() map[string]string {
	return map[string]string{
		"id":       "orders.id",
		"paciente": "orders.patient_name",
		"prazo":    "orders.due_date",
		"status":   "orders.status",
	}
}

// ParseOrderSort never fails: blank and unknown keys fall back to DefaultOrderSort.
func ParseOrderSort(raw string) OrderSort {
	raw = strings.ToLower(strings.TrimSpace(raw))
	desc := strings.HasPrefix(raw, "-")
	key := strings.TrimPrefix(raw, "-")

	if _, ok := getOrderSortColumns()[key]; !ok {
		return DefaultOrderSort
	}
	return OrderSort{key: key, desc: desc}
}

func (s OrderSort) String() string {
	if s.key == "" {
		return DefaultOrderSort.String()
	}
	if s.desc {
		return "-" + s.key
	}
	return s.key
}

// clause renders ORDER BY; ties are broken by id, newest first.
func (s OrderSort) clause() string {
	column, ok := getOrderSortColumns()[s.key]
	if !ok {
		return DefaultOrderSort.clause()
	}

	direction := "ASC"
	if s.desc {
		direction = "DESC"
	}

	if s.key == "id" {
		return column + " " + direction
	}
	return column + " " + direction + " NULLS LAST, orders.id DESC"
}
