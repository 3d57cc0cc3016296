package models

// CategorySavings 储蓄类账目使用的固定类别，不属于六个展示类别
const CategorySavings = "ahorro"

// CategoryDefault 未选择类别时的默认值
const CategoryDefault = "varios"

// Category 支出类别，编译期固定，不入库
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Icon  string `json:"icono"`
	Color string `json:"color"`
}

// Categories 六个固定支出类别，顺序即展示顺序
var Categories = []Category{
	{ID: "comida", Name: "Comida", Icon: "coffee", Color: "#f97316"},
	{ID: "vivienda", Name: "Vivienda", Icon: "home", Color: "#3b82f6"},
	{ID: "transporte", Name: "Transporte", Icon: "car", Color: "#a855f7"},
	{ID: "compras", Name: "Compras", Icon: "shopping-bag", Color: "#ec4899"},
	{ID: "salud", Name: "Salud", Icon: "heart", Color: "#ef4444"},
	{ID: "varios", Name: "Varios", Icon: "plus", Color: "#64748b"},
}

// savingsCategory 储蓄类别的展示信息
var savingsCategory = Category{ID: CategorySavings, Name: "Ahorro", Icon: "piggy-bank", Color: "#10b981"}

// LookupCategory 按 ID 查找类别，ahorro 返回储蓄展示信息
func LookupCategory(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	if id == CategorySavings {
		return savingsCategory, true
	}
	return Category{}, false
}

// IsStaticCategory 是否为六个固定类别之一
func IsStaticCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
