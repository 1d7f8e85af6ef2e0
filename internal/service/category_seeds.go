package service

// CategorySeeds defines one marketing category: the seed queries used to
// build the candidate pool, the semantic keywords matched against video
// titles/descriptions, and the minimum match ratio enforced in strict mode.
type CategorySeeds struct {
	Key           string
	MinMatchRatio float64
	Queries       []string
	Keywords      []string
}

// DefaultCategory is the fallback when a requested category is unknown.
const DefaultCategory = "3c"

// categorySeeds is process-wide static configuration; never mutated after
// init. Keywords are lowercase because matching is case-folded.
var categorySeeds = map[string]CategorySeeds{
	"3c": {
		Key:           "3c",
		MinMatchRatio: 0.22,
		Queries: []string{
			"iphone 開箱", "android 開箱", "手機 評測", "筆電 評測",
			"相機 開箱", "耳機 評測", "pc 組裝", "科技 新聞", "3c 開箱",
		},
		Keywords: []string{
			"iphone", "android", "手機", "开箱", "開箱", "評測", "评测", "benchmark", "pc", "電腦", "电脑", "筆電", "笔电",
			"相機", "相机", "耳機", "耳机", "gpu", "cpu", "顯卡", "显卡", "macbook", "ios", "windows", "review", "unbox",
		},
	},
	"lifestyle": {
		Key:           "lifestyle",
		MinMatchRatio: 0.25,
		Queries: []string{
			"vlog 日常", "生活 vlog", "穿搭 lookbook", "room tour",
			"morning routine", "生活風格", "質感 生活", "生活分享",
		},
		Keywords: []string{
			"vlog", "日常", "生活", "穿搭", "lookbook", "room tour", "morning routine", "routine",
			"收納", "收拾", "整理", "居家", "家居", "质感", "hauls", "haul", "outfit",
		},
	},
	"food": {
		Key:           "food",
		MinMatchRatio: 0.26,
		Queries: []string{
			"美食 探店", "料理 食譜", "家常菜", "烘焙 食譜",
			"餐廳 推薦", "吃播", "food vlog", "recipe",
		},
		Keywords: []string{
			"美食", "料理", "食譜", "食谱", "烘焙", "烤箱", "煮", "做菜", "吃", "探店", "餐廳", "餐厅", "食堂",
			"recipe", "cook", "cooking", "food", "吃播", "試吃", "开箱吃",
		},
	},
	"parenting": {
		Key:           "parenting",
		MinMatchRatio: 0.22,
		Queries: []string{
			"育兒 分享", "親子 vlog", "寶寶 日常", "孕期 日記",
			"媽媽 分享", "baby vlog", "mom vlog", "親子 教育",
		},
		Keywords: []string{
			"育兒", "育儿", "親子", "亲子", "寶寶", "宝宝", "孕", "懷孕", "怀孕", "媽媽", "妈妈", "baby", "mom", "family",
			"幼兒", "幼儿", "小孩", "孩子", "奶粉", "尿布", "托嬰", "托婴",
		},
	},
	"finance": {
		Key:           "finance",
		MinMatchRatio: 0.20,
		Queries: []string{
			"股票 分析", "ETF 解析", "理財 教學", "投資 心法",
			"crypto 教學", "比特幣 分析", "房地產 分析",
		},
		Keywords: []string{
			"投資", "投资", "理財", "理财", "股票", "etf", "基金", "股市", "財經", "财经", "比特幣", "比特币", "bitcoin",
			"crypto", "加密", "期貨", "期货", "美股", "台股", "港股", "房地產", "房地产",
		},
	},
	"travel": {
		Key:           "travel",
		MinMatchRatio: 0.22,
		Queries: []string{
			"旅遊 vlog", "旅行 攻略", "飯店 開箱", "日本 旅遊",
			"香港 旅遊", "出國 旅行", "travel vlog", "trip",
		},
		Keywords: []string{
			"旅遊", "旅游", "旅行", "攻略", "行程", "景點", "景点", "飯店", "酒店", "hotel", "airbnb", "travel", "trip",
			"機票", "机票", "出國", "出国", "登機", "登机", "日本", "韓國", "韩国",
		},
	},
	"fitness": {
		Key:           "fitness",
		MinMatchRatio: 0.22,
		Queries: []string{
			"健身 訓練", "減脂 訓練", "增肌 訓練", "workout",
			"gym 訓練", "居家 運動", "瑜珈 教學",
		},
		Keywords: []string{
			"健身", "workout", "gym", "训练", "訓練", "減脂", "减脂", "增肌", "肌肉", "蛋白", "热量", "卡路里",
			"瑜珈", "瑜伽", "跑步", "重訓", "重量訓練", "力量", "bodybuilding", "hiit",
		},
	},
}

// LookupCategory returns the seed entry for key, falling back to the "3c"
// entry when the key is unrecognized.
func LookupCategory(key string) CategorySeeds {
	if seeds, ok := categorySeeds[key]; ok {
		return seeds
	}
	return categorySeeds[DefaultCategory]
}
