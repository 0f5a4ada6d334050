package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// SingBuri returns the shard for Sing Buri province (สิงห์บุรี).
func SingBuri() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "sing-buri-001",
			Name:          "วัดพระนอนจักรสีห์วรวิหาร",
			NameEn:        "Wat Phra Non Chakkrasi Worawihan",
			Description:   "Royal temple housing a 46-meter reclining Buddha in the Sukhothai style.",
			Coordinates:   models.Coordinates{Latitude: 14.8456, Longitude: 100.3804},
			Category:      "temple",
			Province:      "สิงห์บุรี",
			District:      "เมืองสิงห์บุรี",
			Address:       "ตำบลจักรสีห์ อำเภอเมืองสิงห์บุรี",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/sing-buri-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "sing-buri-002",
			Name:          "อนุสาวรีย์วีรชนค่ายบางระจัน",
			NameEn:        "Bang Rachan Heroes Monument",
			Description:   "Memorial park honoring the villagers of Bang Rachan who resisted the Burmese army in 1765.",
			Coordinates:   models.Coordinates{Latitude: 14.8911, Longitude: 100.3167},
			Category:      "historical",
			Categories:    []string{"historical", "culture"},
			Province:      "สิงห์บุรี",
			District:      "ค่ายบางระจัน",
			Address:       "ตำบลบางระจัน อำเภอค่ายบางระจัน",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/sing-buri-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "sing-buri-003",
			Name:          "ตลาดไทยย้อนยุคบ้านระจัน",
			NameEn:        "Ban Rachan Retro Market",
			Description:   "Weekend market where vendors dress in period costume and trade in old-style coupons.",
			Coordinates:   models.Coordinates{Latitude: 14.8935, Longitude: 100.3182},
			Category:      "market",
			Province:      "สิงห์บุรี",
			District:      "ค่ายบางระจัน",
			Address:       "วัดโพธิ์เก้าต้น ตำบลบางระจัน อำเภอค่ายบางระจัน",
			CheckInRadius: 120,
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	return mustShard(shard.New("สิงห์บุรี", []string{"Sing Buri", "sing-buri", "singburi"}, records))
}
