package service

import (
	"strings"

	"kakeibo/models"
)

// suggestionRule キーワード→カテゴリの対応表1件
type suggestionRule struct {
	category string
	keywords []string
}

// suggestionRules メモからカテゴリを推測するための対応表
// 上から順に評価し、最初にキーワードが一致した表で確定する（食費が最優先）
var suggestionRules = []suggestionRule{
	{models.CategoryFood, []string{
		"コンビニ", "スーパー", "ランチ", "カフェ", "レストラン", "弁当",
		"外食", "居酒屋", "朝食", "昼食", "夕食", "食事", "マック", "cafe", "lunch",
	}},
	{models.CategoryTransport, []string{
		"電車", "バス", "タクシー", "ガソリン", "定期券", "切符", "新幹線",
		"駐車場", "高速", "suica", "pasmo",
	}},
	{models.CategoryDailyGoods, []string{
		"ドラッグストア", "洗剤", "シャンプー", "ティッシュ", "トイレットペーパー", "日用品", "100均",
	}},
	{models.CategoryHobby, []string{
		"映画", "ゲーム", "カラオケ", "ライブ", "漫画", "書籍", "netflix", "spotify",
	}},
	{models.CategoryMedical, []string{
		"病院", "薬", "歯医者", "クリニック", "診察", "歯科",
	}},
	{models.CategoryClothing, []string{
		"服", "美容院", "美容室", "化粧品", "ユニクロ", "クリーニング",
	}},
	{models.CategorySocial, []string{
		"飲み会", "プレゼント", "お祝い", "結婚式", "香典",
	}},
	{models.CategoryUtility, []string{
		"電気代", "ガス代", "水道代", "電気料金",
	}},
	{models.CategoryCommunication, []string{
		"スマホ", "携帯", "wifi", "インターネット", "通信料",
	}},
	{models.CategoryHousing, []string{
		"家賃", "管理費", "修繕",
	}},
}

// SuggestCategory メモの内容からカテゴリを推測する
// 一致するキーワードが無ければ ok=false を返す。副作用なし
func SuggestCategory(memo string) (category string, ok bool) {
	text := strings.ToLower(memo)
	if text == "" {
		return "", false
	}
	for _, rule := range suggestionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
