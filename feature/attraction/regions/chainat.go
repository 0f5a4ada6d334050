package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// ChaiNat returns the shard for Chai Nat province (ชัยนาท).
func ChaiNat() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "chai-nat-001",
			Name:          "สวนนกชัยนาท",
			NameEn:        "Chai Nat Bird Park",
			Description:   "Bird park beneath Khao Phlong mountain with one of the largest walk-in aviaries in Asia.",
			Coordinates:   models.Coordinates{Latitude: 15.1590, Longitude: 100.1464},
			Category:      "nature",
			Province:      "ชัยนาท",
			District:      "เมืองชัยนาท",
			Address:       "ตำบลเขาท่าพระ อำเภอเมืองชัยนาท",
			CheckInRadius: 300,
			Thumbnail:     "thumbnails/chai-nat-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "chai-nat-002",
			Name:          "เขื่อนเจ้าพระยา",
			NameEn:        "Chao Phraya Dam",
			Description:   "First large-scale irrigation barrage across the Chao Phraya River, completed in 1957.",
			Coordinates:   models.Coordinates{Latitude: 15.1561, Longitude: 100.1811},
			Category:      "nature",
			Categories:    []string{"nature", "historical"},
			Province:      "ชัยนาท",
			District:      "สรรพยา",
			Address:       "ตำบลบางหลวง อำเภอสรรพยา",
			CheckInRadius: 250,
			Thumbnail:     "thumbnails/chai-nat-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "chai-nat-003",
			Name:          "วัดธรรมามูลวรวิหาร",
			NameEn:        "Wat Thammamun Worawihan",
			Description:   "Hillside royal temple on the bank of the Chao Phraya, home of the revered Luang Pho Than Chai image.",
			Coordinates:   models.Coordinates{Latitude: 15.2203, Longitude: 100.1331},
			Category:      "temple",
			Province:      "ชัยนาท",
			District:      "เมืองชัยนาท",
			Address:       "ตำบลธรรมามูล อำเภอเมืองชัยนาท",
			CheckInRadius: 150,
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	return mustShard(shard.New("ชัยนาท", []string{"Chai Nat", "chai-nat", "chainat"}, records))
}
