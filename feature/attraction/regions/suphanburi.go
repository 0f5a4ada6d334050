package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// SuphanBuri returns the shard for Suphan Buri province (สุพรรณบุรี).
func SuphanBuri() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "suphan-buri-001",
			Name:          "ตลาดสามชุก",
			NameEn:        "Sam Chuk Market",
			Description:   "Hundred-year-old wooden market town on the Tha Chin River, preserved as a living heritage site.",
			Coordinates:   models.Coordinates{Latitude: 14.7569, Longitude: 100.0953},
			Category:      "market",
			Categories:    []string{"market", "historical"},
			Province:      "สุพรรณบุรี",
			District:      "สามชุก",
			Address:       "ตำบลสามชุก อำเภอสามชุก",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/suphan-buri-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "suphan-buri-002",
			Name:          "บึงฉวากเฉลิมพระเกียรติ",
			NameEn:        "Bueng Chawak",
			Description:   "Large freshwater lake with an aquarium, crocodile farm, and botanical gardens.",
			Coordinates:   models.Coordinates{Latitude: 14.8333, Longitude: 100.0167},
			Category:      "nature",
			Province:      "สุพรรณบุรี",
			District:      "เดิมบางนางบวช",
			Address:       "ตำบลเดิมบาง อำเภอเดิมบางนางบวช",
			CheckInRadius: 400,
			Thumbnail:     "thumbnails/suphan-buri-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "suphan-buri-003",
			Name:          "วัดป่าเลไลยก์วรวิหาร",
			NameEn:        "Wat Pa Lelai Worawihan",
			Description:   "Ancient royal temple with a 23-meter seated Buddha, tied to the Thai epic Khun Chang Khun Phaen.",
			Coordinates:   models.Coordinates{Latitude: 14.4722, Longitude: 100.1028},
			Category:      "temple",
			Categories:    []string{"temple", "historical"},
			Province:      "สุพรรณบุรี",
			District:      "เมืองสุพรรณบุรี",
			Address:       "ตำบลรั้วใหญ่ อำเภอเมืองสุพรรณบุรี",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/suphan-buri-003.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "suphan-buri-004",
			Name:          "หอคอยบรรหาร-แจ่มใส",
			NameEn:        "Banharn-Jamsai Tower",
			Description:   "123-meter observation tower overlooking Suphan Buri city and Chaloem Phatthara Rachini Park.",
			Coordinates:   models.Coordinates{Latitude: 14.4669, Longitude: 100.1158},
			Category:      "culture",
			Province:      "สุพรรณบุรี",
			District:      "เมืองสุพรรณบุรี",
			Address:       "ตำบลท่าพี่เลี้ยง อำเภอเมืองสุพรรณบุรี",
			CheckInRadius: 120,
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	return mustShard(shard.New("สุพรรณบุรี", []string{"Suphan Buri", "suphan-buri", "suphanburi"}, records))
}
