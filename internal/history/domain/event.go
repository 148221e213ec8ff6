package domain

type Kind string

const (
	KindCity Kind = "city"
	KindArmy Kind = "army"
)

// Event 是 feed 中的一行：某一天某个实体的位置与归属。
type Event struct {
	Day         int
	X           int
	Y           int
	TerritoryID int
	WorldID     int
	SizeClass   int
	Kind        Kind
	OwnerID     int
}

// SizeClassRadius 城市半径查表（世界坐标单位），下标为 SizeClass。
var SizeClassRadius = [...]float64{10, 10, 20, 30, 40, 50, 60, 70, 75, 75}

// ValidSizeClass 报告 size class 是否在查表范围内。
func ValidSizeClass(sc int) bool {
	return sc >= 0 && sc < len(SizeClassRadius)
}
