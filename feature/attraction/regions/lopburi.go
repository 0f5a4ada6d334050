package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// Lopburi returns the shard for Lopburi province (ลพบุรี).
func Lopburi() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "lopburi-001",
			Name:          "พระปรางค์สามยอด",
			NameEn:        "Phra Prang Sam Yot",
			Description:   "Three Khmer-style laterite towers from the 13th century, now famously inhabited by macaques.",
			Coordinates:   models.Coordinates{Latitude: 14.8008, Longitude: 100.6136},
			Category:      "historical",
			Categories:    []string{"historical", "temple"},
			Province:      "ลพบุรี",
			District:      "เมืองลพบุรี",
			Address:       "ตำบลท่าหิน อำเภอเมืองลพบุรี",
			CheckInRadius: 120,
			Thumbnail:     "thumbnails/lopburi-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "lopburi-002",
			Name:          "พระนารายณ์ราชนิเวศน์",
			NameEn:        "King Narai's Palace",
			Description:   "17th-century royal palace of King Narai the Great, now the Somdet Phra Narai National Museum.",
			Coordinates:   models.Coordinates{Latitude: 14.7995, Longitude: 100.6103},
			Category:      "historical",
			Province:      "ลพบุรี",
			District:      "เมืองลพบุรี",
			Address:       "ถนนสรศักดิ์ ตำบลท่าหิน อำเภอเมืองลพบุรี",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/lopburi-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "lopburi-003",
			Name:          "ทุ่งทานตะวันเขาจีนแล",
			NameEn:        "Khao Chin Lae Sunflower Fields",
			Description:   "Seasonal sunflower fields blooming between November and January against the Khao Chin Lae hills.",
			Coordinates:   models.Coordinates{Latitude: 14.8731, Longitude: 100.7406},
			Category:      "nature",
			Province:      "ลพบุรี",
			District:      "เมืองลพบุรี",
			Address:       "ตำบลนิคมสร้างตนเอง อำเภอเมืองลพบุรี",
			CheckInRadius: 300,
			IsActive:      false,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "lopburi-004",
			Name:          "ศาลพระกาฬ",
			NameEn:        "San Phra Kan Shrine",
			Description:   "Revered shrine built over Khmer ruins, home to a large troop of long-tailed macaques.",
			Coordinates:   models.Coordinates{Latitude: 14.8023, Longitude: 100.6151},
			Category:      "temple",
			Province:      "ลพบุรี",
			District:      "เมืองลพบุรี",
			Address:       "ตำบลทะเลชุบศร อำเภอเมืองลพบุรี",
			CheckInRadius: 100,
			Thumbnail:     "thumbnails/lopburi-004.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "lopburi-005",
			Name:          "เขื่อนป่าสักชลสิทธิ์",
			NameEn:        "Pa Sak Jolasid Dam",
			Description:   "Longest earth-filled dam in Thailand with a scenic railway running across the reservoir.",
			Coordinates:   models.Coordinates{Latitude: 14.8616, Longitude: 101.0679},
			Category:      "nature",
			Province:      "ลพบุรี",
			District:      "พัฒนานิคม",
			Address:       "ตำบลหนองบัว อำเภอพัฒนานิคม",
			CheckInRadius: 400,
			Thumbnail:     "thumbnails/lopburi-005.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	return mustShard(shard.New("ลพบุรี", []string{"Lopburi", "lop-buri", "lopburi"}, records))
}
