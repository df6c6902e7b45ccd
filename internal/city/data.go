package city

// groups mirrors the primary subdivision table used by the daily feed. Labels must match
// the JMA weekly feed's area names exactly.
var groups = []Group{
	{
		Label: "道北",
		Cities: []City{
			{ID: "011000", Label: "稚内"},
			{ID: "012010", Label: "旭川"},
			{ID: "012020", Label: "留萌"},
		},
	},
	{
		Label: "道東",
		Cities: []City{
			{ID: "013010", Label: "網走"},
			{ID: "013020", Label: "北見"},
			{ID: "013030", Label: "紋別"},
			{ID: "014010", Label: "根室"},
			{ID: "014020", Label: "釧路"},
			{ID: "014030", Label: "帯広"},
		},
	},
	{
		Label: "道南",
		Cities: []City{
			{ID: "015010", Label: "室蘭"},
			{ID: "015020", Label: "浦河"},
			{ID: "017010", Label: "函館"},
			{ID: "017020", Label: "江差"},
		},
	},
	{
		Label: "道央",
		Cities: []City{
			{ID: "016010", Label: "札幌"},
			{ID: "016020", Label: "岩見沢"},
			{ID: "016030", Label: "倶知安"},
		},
	},
	{
		Label: "青森県",
		Cities: []City{
			{ID: "020010", Label: "青森"},
			{ID: "020020", Label: "むつ"},
			{ID: "020030", Label: "八戸"},
		},
	},
	{
		Label: "岩手県",
		Cities: []City{
			{ID: "030010", Label: "盛岡"},
			{ID: "030020", Label: "宮古"},
			{ID: "030030", Label: "大船渡"},
		},
	},
	{
		Label: "宮城県",
		Cities: []City{
			{ID: "040010", Label: "仙台"},
			{ID: "040020", Label: "白石"},
		},
	},
	{
		Label: "秋田県",
		Cities: []City{
			{ID: "050010", Label: "秋田"},
			{ID: "050020", Label: "横手"},
		},
	},
	{
		Label: "山形県",
		Cities: []City{
			{ID: "060010", Label: "山形"},
			{ID: "060020", Label: "米沢"},
			{ID: "060030", Label: "酒田"},
			{ID: "060040", Label: "新庄"},
		},
	},
	{
		Label: "福島県",
		Cities: []City{
			{ID: "070010", Label: "福島"},
			{ID: "070020", Label: "小名浜"},
			{ID: "070030", Label: "若松"},
		},
	},
	{
		Label: "茨城県",
		Cities: []City{
			{ID: "080010", Label: "水戸"},
			{ID: "080020", Label: "土浦"},
		},
	},
	{
		Label: "栃木県",
		Cities: []City{
			{ID: "090010", Label: "宇都宮"},
			{ID: "090020", Label: "大田原"},
		},
	},
	{
		Label: "群馬県",
		Cities: []City{
			{ID: "100010", Label: "前橋"},
			{ID: "100020", Label: "みなかみ"},
		},
	},
	{
		Label: "埼玉県",
		Cities: []City{
			{ID: "110010", Label: "さいたま"},
			{ID: "110020", Label: "熊谷"},
			{ID: "110030", Label: "秩父"},
		},
	},
	{
		Label: "千葉県",
		Cities: []City{
			{ID: "120010", Label: "千葉"},
			{ID: "120020", Label: "銚子"},
			{ID: "120030", Label: "館山"},
		},
	},
	{
		Label: "東京都",
		Cities: []City{
			{ID: "130010", Label: "東京"},
			{ID: "130020", Label: "大島"},
			{ID: "130030", Label: "八丈島"},
			{ID: "130040", Label: "父島"},
		},
	},
	{
		Label: "神奈川県",
		Cities: []City{
			{ID: "140010", Label: "横浜"},
			{ID: "140020", Label: "小田原"},
		},
	},
	{
		Label: "新潟県",
		Cities: []City{
			{ID: "150010", Label: "新潟"},
			{ID: "150020", Label: "長岡"},
			{ID: "150030", Label: "高田"},
			{ID: "150040", Label: "相川"},
		},
	},
	{
		Label: "富山県",
		Cities: []City{
			{ID: "160010", Label: "富山"},
			{ID: "160020", Label: "伏木"},
		},
	},
	{
		Label: "石川県",
		Cities: []City{
			{ID: "170010", Label: "金沢"},
			{ID: "170020", Label: "輪島"},
		},
	},
	{
		Label: "福井県",
		Cities: []City{
			{ID: "180010", Label: "福井"},
			{ID: "180020", Label: "敦賀"},
		},
	},
	{
		Label: "山梨県",
		Cities: []City{
			{ID: "190010", Label: "甲府"},
			{ID: "190020", Label: "河口湖"},
		},
	},
	{
		Label: "長野県",
		Cities: []City{
			{ID: "200010", Label: "長野"},
			{ID: "200020", Label: "松本"},
			{ID: "200030", Label: "飯田"},
		},
	},
	{
		Label: "岐阜県",
		Cities: []City{
			{ID: "210010", Label: "岐阜"},
			{ID: "210020", Label: "高山"},
		},
	},
	{
		Label: "静岡県",
		Cities: []City{
			{ID: "220010", Label: "静岡"},
			{ID: "220020", Label: "網代"},
			{ID: "220030", Label: "三島"},
			{ID: "220040", Label: "浜松"},
		},
	},
	{
		Label: "愛知県",
		Cities: []City{
			{ID: "230010", Label: "名古屋"},
			{ID: "230020", Label: "豊橋"},
		},
	},
	{
		Label: "三重県",
		Cities: []City{
			{ID: "240010", Label: "津"},
			{ID: "240020", Label: "尾鷲"},
		},
	},
	{
		Label: "滋賀県",
		Cities: []City{
			{ID: "250010", Label: "大津"},
			{ID: "250020", Label: "彦根"},
		},
	},
	{
		Label: "京都府",
		Cities: []City{
			{ID: "260010", Label: "京都"},
			{ID: "260020", Label: "舞鶴"},
		},
	},
	{
		Label: "大阪府",
		Cities: []City{
			{ID: "270000", Label: "大阪"},
		},
	},
	{
		Label: "兵庫県",
		Cities: []City{
			{ID: "280010", Label: "神戸"},
			{ID: "280020", Label: "豊岡"},
		},
	},
	{
		Label: "奈良県",
		Cities: []City{
			{ID: "290010", Label: "奈良"},
			{ID: "290020", Label: "風屋"},
		},
	},
	{
		Label: "和歌山県",
		Cities: []City{
			{ID: "300010", Label: "和歌山"},
			{ID: "300020", Label: "潮岬"},
		},
	},
	{
		Label: "鳥取県",
		Cities: []City{
			{ID: "310010", Label: "鳥取"},
			{ID: "310020", Label: "米子"},
		},
	},
	{
		Label: "島根県",
		Cities: []City{
			{ID: "320010", Label: "松江"},
			{ID: "320020", Label: "浜田"},
			{ID: "320030", Label: "西郷"},
		},
	},
	{
		Label: "岡山県",
		Cities: []City{
			{ID: "330010", Label: "岡山"},
			{ID: "330020", Label: "津山"},
		},
	},
	{
		Label: "広島県",
		Cities: []City{
			{ID: "340010", Label: "広島"},
			{ID: "340020", Label: "庄原"},
		},
	},
	{
		Label: "山口県",
		Cities: []City{
			{ID: "350010", Label: "下関"},
			{ID: "350020", Label: "山口"},
			{ID: "350030", Label: "柳井"},
			{ID: "350040", Label: "萩"},
		},
	},
	{
		Label: "徳島県",
		Cities: []City{
			{ID: "360010", Label: "徳島"},
			{ID: "360020", Label: "日和佐"},
		},
	},
	{
		Label: "香川県",
		Cities: []City{
			{ID: "370000", Label: "高松"},
		},
	},
	{
		Label: "愛媛県",
		Cities: []City{
			{ID: "380010", Label: "松山"},
			{ID: "380020", Label: "新居浜"},
			{ID: "380030", Label: "宇和島"},
		},
	},
	{
		Label: "高知県",
		Cities: []City{
			{ID: "390010", Label: "高知"},
			{ID: "390020", Label: "室戸岬"},
			{ID: "390030", Label: "清水"},
		},
	},
	{
		Label: "福岡県",
		Cities: []City{
			{ID: "400010", Label: "福岡"},
			{ID: "400020", Label: "八幡"},
			{ID: "400030", Label: "飯塚"},
			{ID: "400040", Label: "久留米"},
		},
	},
	{
		Label: "佐賀県",
		Cities: []City{
			{ID: "410010", Label: "佐賀"},
			{ID: "410020", Label: "伊万里"},
		},
	},
	{
		Label: "長崎県",
		Cities: []City{
			{ID: "420010", Label: "長崎"},
			{ID: "420020", Label: "佐世保"},
			{ID: "420030", Label: "厳原"},
			{ID: "420040", Label: "福江"},
		},
	},
	{
		Label: "熊本県",
		Cities: []City{
			{ID: "430010", Label: "熊本"},
			{ID: "430020", Label: "阿蘇乙姫"},
			{ID: "430030", Label: "牛深"},
			{ID: "430040", Label: "人吉"},
		},
	},
	{
		Label: "大分県",
		Cities: []City{
			{ID: "440010", Label: "大分"},
			{ID: "440020", Label: "中津"},
			{ID: "440030", Label: "日田"},
			{ID: "440040", Label: "佐伯"},
		},
	},
	{
		Label: "宮崎県",
		Cities: []City{
			{ID: "450010", Label: "宮崎"},
			{ID: "450020", Label: "延岡"},
			{ID: "450030", Label: "都城"},
			{ID: "450040", Label: "高千穂"},
		},
	},
	{
		Label: "鹿児島県",
		Cities: []City{
			{ID: "460010", Label: "鹿児島"},
			{ID: "460020", Label: "鹿屋"},
			{ID: "460030", Label: "種子島"},
			{ID: "460040", Label: "名瀬"},
		},
	},
	{
		Label: "沖縄県",
		Cities: []City{
			{ID: "471010", Label: "那覇"},
			{ID: "471020", Label: "名護"},
			{ID: "471030", Label: "久米島"},
			{ID: "472000", Label: "南大東"},
			{ID: "473000", Label: "宮古島"},
			{ID: "474010", Label: "石垣島"},
			{ID: "474020", Label: "与那国島"},
		},
	},
}
