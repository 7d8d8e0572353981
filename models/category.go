package models

// カテゴリ定数
const (
	CategoryFood          = "食費"
	CategoryTransport     = "交通費"
	CategoryDailyGoods    = "日用品"
	CategoryHobby         = "趣味・娯楽"
	CategoryMedical       = "医療費"
	CategoryClothing      = "衣服・美容"
	CategorySocial        = "交際費"
	CategoryUtility       = "水道光熱費"
	CategoryCommunication = "通信費"
	CategoryHousing       = "住居費"
	CategoryOther         = "その他"
)

// DefaultCategories 初期カテゴリ一覧（表示順）
// 保存データが無い・壊れている場合のシードとして使う
func DefaultCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryDailyGoods,
		CategoryHobby,
		CategoryMedical,
		CategoryClothing,
		CategorySocial,
		CategoryUtility,
		CategoryCommunication,
		CategoryHousing,
		CategoryOther,
	}
}
