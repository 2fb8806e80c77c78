package catalog

import "github.com/guimashan/platfrom-sub000/internal/models"

// defaultEntries is the compiled-in keyword table. The export pipeline
// regenerates this list from the remote store; promote a reviewed snapshot
// by replacing the literal below.
var defaultEntries = []Entry{
	// checkin
	{
		Keyword:  "奉香簽到",
		Aliases:  []string{"奉香", "打卡簽到"},
		Category: models.CategoryCheckin,
		Priority: 100,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "checkin"},
		Reply: models.ReplyPayload{
			AltText: "奉香簽到",
			Text:    "請點選下方按鈕進行奉香簽到",
			Label:   "立即簽到",
		},
		Description: "GPS 奉香簽到",
	},
	{
		Keyword:  "消災祈福簽到",
		Aliases:  []string{"祈福簽到"},
		Category: models.CategoryCheckin,
		Priority: 95,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "checkin", Path: "/blessing"},
		Reply: models.ReplyPayload{
			AltText: "消災祈福簽到",
			Text:    "請點選下方按鈕進行消災祈福簽到",
			Label:   "立即簽到",
		},
	},
	{
		Keyword:  "志工簽到",
		Aliases:  []string{"志工打卡"},
		Category: models.CategoryCheckin,
		Priority: 90,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "checkin", Path: "/volunteer"},
		Reply: models.ReplyPayload{
			AltText: "志工簽到",
			Text:    "志工夥伴請點選下方按鈕簽到",
			Label:   "立即簽到",
		},
	},

	// service
	{
		Keyword:  "安太歲",
		Aliases:  []string{"太歲"},
		Category: models.CategoryService,
		Priority: 80,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "service", Path: "/taisui"},
		Reply: models.ReplyPayload{
			AltText: "安太歲",
			Text:    "線上安太歲登記，請點選下方按鈕填寫資料",
			Label:   "線上登記",
		},
	},
	{
		Keyword:  "點光明燈",
		Aliases:  []string{"光明燈"},
		Category: models.CategoryService,
		Priority: 79,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "service", Path: "/light"},
		Reply: models.ReplyPayload{
			AltText: "點光明燈",
			Text:    "線上點光明燈，請點選下方按鈕填寫資料",
			Label:   "線上登記",
		},
	},
	{
		Keyword:  "文昌燈",
		Category: models.CategoryService,
		Priority: 78,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "service", Path: "/wenchang"},
		Reply: models.ReplyPayload{
			AltText: "文昌燈",
			Text:    "線上點文昌燈，請點選下方按鈕填寫資料",
			Label:   "線上登記",
		},
	},
	{
		Keyword:  "法會報名",
		Aliases:  []string{"祈福法會報名"},
		Category: models.CategoryService,
		Priority: 77,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "service", Path: "/ritual"},
		Reply: models.ReplyPayload{
			AltText: "法會報名",
			Text:    "法會報名請點選下方按鈕",
			Label:   "前往報名",
		},
	},
	{
		Keyword:  "線上捐獻",
		Aliases:  []string{"捐獻", "添香油"},
		Category: models.CategoryService,
		Priority: 76,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "donate"},
		Reply: models.ReplyPayload{
			AltText: "線上捐獻",
			Text:    "感謝您的發心，請點選下方按鈕進行線上捐獻",
			Label:   "前往捐獻",
		},
	},
	{
		Keyword:  "會員註冊",
		Aliases:  []string{"註冊"},
		Category: models.CategoryService,
		Priority: 75,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "signup"},
		Reply: models.ReplyPayload{
			AltText: "會員註冊",
			Text:    "首次使用請先完成會員註冊",
			Label:   "前往註冊",
		},
	},
	{
		Keyword:  "繳費資訊",
		Aliases:  []string{"匯款資訊"},
		Category: models.CategoryService,
		Priority: 74,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionStaticText},
		Reply: models.ReplyPayload{
			Text: "繳費帳戶：第一銀行(007) 123-456-789012，戶名：財團法人龜馬山紫皇天乙真慶宮。匯款後請保留收據，並透過「收據查詢」確認入帳。",
		},
	},
	{
		Keyword:  "收據查詢",
		Category: models.CategoryService,
		Priority: 73,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "service", Path: "/receipts"},
		Reply: models.ReplyPayload{
			AltText: "收據查詢",
			Text:    "請點選下方按鈕查詢您的繳費收據",
			Label:   "查詢收據",
		},
	},

	// schedule
	{
		Keyword:  "法會時間",
		Aliases:  []string{"法會行程"},
		Category: models.CategorySchedule,
		Priority: 60,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "schedule"},
		Reply: models.ReplyPayload{
			AltText: "法會時間",
			Text:    "近期法會時間請點選下方按鈕查看",
			Label:   "查看行程",
		},
	},
	{
		Keyword:  "開放時間",
		Category: models.CategorySchedule,
		Priority: 59,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionStaticText},
		Reply: models.ReplyPayload{
			Text: "本宮開放時間：每日 05:00–21:00，農曆初一、十五延長至 22:00。",
		},
	},
	{
		Keyword:  "初一十五",
		Aliases:  []string{"朔望"},
		Category: models.CategorySchedule,
		Priority: 58,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionStaticText},
		Reply: models.ReplyPayload{
			Text: "農曆初一、十五皆有誦經祈福，上午 09:00 開始，歡迎十方善信參加。",
		},
	},
	{
		Keyword:  "行事曆",
		Aliases:  []string{"年度行事曆"},
		Category: models.CategorySchedule,
		Priority: 57,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionDirectLink, LIFFURL: "https://www.guimashan.org.tw/calendar"},
		Reply: models.ReplyPayload{
			AltText: "年度行事曆",
			Text:    "年度行事曆請點選下方按鈕查看",
			Label:   "查看行事曆",
		},
	},
	{
		Keyword:  "團體參拜",
		Aliases:  []string{"參拜預約"},
		Category: models.CategorySchedule,
		Priority: 56,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "schedule", Path: "/group"},
		Reply: models.ReplyPayload{
			AltText: "團體參拜預約",
			Text:    "團體參拜請提前預約，請點選下方按鈕填寫",
			Label:   "預約參拜",
		},
	},

	// other
	{
		Keyword:  "交通資訊",
		Aliases:  []string{"怎麼去", "地址"},
		Category: models.CategoryOther,
		Priority: 40,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionStaticText},
		Reply: models.ReplyPayload{
			Text: "本宮地址：新北市淡水區屯山里石頭厝2-1號。自行開車請導航「龜馬山紫皇天乙真慶宮」；大眾運輸可搭乘淡水客運867至屯山國小站下車。",
		},
	},
	{
		Keyword:  "聯絡我們",
		Aliases:  []string{"聯絡", "電話"},
		Category: models.CategoryOther,
		Priority: 39,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionStaticText},
		Reply: models.ReplyPayload{
			Text: "服務電話：(02) 2801-1234（每日 08:00–17:00），或於上班時間蒞臨服務台洽詢。",
		},
	},
	{
		Keyword:  "官方網站",
		Aliases:  []string{"官網"},
		Category: models.CategoryOther,
		Priority: 38,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionDirectLink, LIFFURL: "https://www.guimashan.org.tw"},
		Reply: models.ReplyPayload{
			AltText: "官方網站",
			Text:    "歡迎瀏覽本宮官方網站",
			Label:   "前往官網",
		},
	},
	{
		Keyword:  "最新消息",
		Category: models.CategoryOther,
		Priority: 37,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionDirectLink, LIFFURL: "https://www.guimashan.org.tw/news"},
		Reply: models.ReplyPayload{
			AltText: "最新消息",
			Text:    "最新消息與公告請點選下方按鈕查看",
			Label:   "查看消息",
		},
	},
	{
		Keyword:  "服務項目",
		Aliases:  []string{"功能", "選單"},
		Category: models.CategoryOther,
		Priority: 36,
		Enabled:  true,
		Action:   models.Action{Type: models.ActionComposedLink, LIFFApp: "home"},
		Reply: models.ReplyPayload{
			AltText: "服務項目",
			Text:    "本宮線上服務項目請點選下方按鈕查看",
			Label:   "查看服務",
		},
	},
}
