package model

// DefaultCatalog returns the demo catalog inserted into an empty store.
// Every entry is active; the first three are featured.
// A fresh slice is built on every call so callers may mutate it.
func DefaultCatalog() []Product {
	return []Product{
		{
			Name:        "黑金電競旗艦 4090",
			Category:    "電競主機",
			Price:       189000,
			Tags:        Tags{"RTX 4090", "i9 14900K", "水冷", "靜音"},
			Description: "為極致遊戲與 8K 創作打造，全銅水冷迴路，黑金線材客製。",
			Image:       "https://images.unsplash.com/photo-1587202372775-98973a9c8af8?auto=format&fit=crop&w=1200&q=80",
			Featured:    true,
			Stock:       5,
			IsActive:    true,
		},
		{
			Name:        "創作工作站 4080 Super",
			Category:    "電競主機",
			Price:       138000,
			Tags:        Tags{"RTX 4080S", "i7 14700K", "玻璃側透", "ARGB"},
			Description: "4K 剪輯 / 3D 製圖即開即用，靜音風道 + 淨化線材管理。",
			Image:       "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=1200&q=80",
			Featured:    true,
			Stock:       8,
			IsActive:    true,
		},
		{
			Name:        "文書靜音 SFF 全黑",
			Category:    "文書主機",
			Price:       46800,
			Tags:        Tags{"全黑", "SFF", "靜音", "Wi-Fi 6E"},
			Description: "7 公升極簡小鋼炮，靜音風扇與減震腳座，桌面隱形配置。",
			Image:       "https://images.unsplash.com/photo-1545239351-46ef2b1cc004?auto=format&fit=crop&w=1200&q=80",
			Featured:    true,
			Stock:       12,
			IsActive:    true,
		},
		{
			Name:        "27 吋 4K IPS 專業螢幕",
			Category:    "螢幕",
			Price:       15800,
			Tags:        Tags{"4K", "IPS", "99% sRGB"},
			Description: "精準色彩校正，雙 HDMI + USB-C，創作者首選。",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1200&q=80",
			Stock:       20,
			IsActive:    true,
		},
		{
			Name:        "34 吋 UWQHD 曲面電競螢幕",
			Category:    "螢幕",
			Price:       19800,
			Tags:        Tags{"165Hz", "曲面", "1ms"},
			Description: "超寬沉浸視野，支援 FreeSync / G-SYNC Compatible。",
			Image:       "https://images.unsplash.com/photo-1545239351-f1bff6c4fc9a?auto=format&fit=crop&w=1200&q=80",
			Stock:       15,
			IsActive:    true,
		},
		{
			Name:        "機械鍵盤 聖金客製版",
			Category:    "周邊",
			Price:       5280,
			Tags:        Tags{"熱插拔", "PBT", "靜音軸"},
			Description: "黑金配色，客製消音墊與潤軸，支援三模連線。",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1200&q=80",
			Stock:       30,
			IsActive:    true,
		},
		{
			Name:        "X99 雙路主機板",
			Category:    "零組件",
			Price:       9800,
			Tags:        Tags{"X99", "雙路", "工作站"},
			Description: "高效多工計算平台，適合虛擬化與渲染節點。",
			Image:       "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?auto=format&fit=crop&w=1200&q=80",
			Stock:       18,
			IsActive:    true,
		},
	}
}
