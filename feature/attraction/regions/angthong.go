package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// AngThong returns the shard for Ang Thong province (อ่างทอง).
func AngThong() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "ang-thong-001",
			Name:          "วัดม่วง",
			NameEn:        "Wat Muang",
			Description:   "Home of one of the largest seated Buddha statues in Thailand, 95 meters tall and visible from kilometers away.",
			Coordinates:   models.Coordinates{Latitude: 14.5896, Longitude: 100.3706},
			Category:      "temple",
			Categories:    []string{"temple", "historical"},
			Province:      "อ่างทอง",
			District:      "วิเศษชัยชาญ",
			Address:       "หมู่ 6 ตำบลหัวตะพาน อำเภอวิเศษชัยชาญ",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/ang-thong-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-002",
			Name:          "วัดขุนอินทประมูล",
			NameEn:        "Wat Khun Inthapramun",
			Description:   "Ayutthaya-era temple with a 50-meter reclining Buddha lying in the open air.",
			Coordinates:   models.Coordinates{Latitude: 14.6397, Longitude: 100.4336},
			Category:      "temple",
			Categories:    []string{"temple", "historical"},
			Province:      "อ่างทอง",
			District:      "โพธิ์ทอง",
			Address:       "ตำบลอินทประมูล อำเภอโพธิ์ทอง",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/ang-thong-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-003",
			Name:          "ตลาดศาลเจ้าโรงทอง",
			NameEn:        "San Chao Rong Thong Market",
			Description:   "Century-old riverside market famous for traditional Thai sweets and snacks.",
			Coordinates:   models.Coordinates{Latitude: 14.5948, Longitude: 100.3754},
			Category:      "market",
			Province:      "อ่างทอง",
			District:      "วิเศษชัยชาญ",
			Address:       "ตำบลศาลเจ้าโรงทอง อำเภอวิเศษชัยชาญ",
			CheckInRadius: 100,
			Thumbnail:     "thumbnails/ang-thong-003.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-004",
			Name:          "หมู่บ้านทำกลองเอกราช",
			NameEn:        "Ekkarat Drum Village",
			Description:   "Village known for handcrafted drums made from rain tree wood, a craft passed down for generations.",
			Coordinates:   models.Coordinates{Latitude: 14.6050, Longitude: 100.4433},
			Category:      "culture",
			Province:      "อ่างทอง",
			District:      "ป่าโมก",
			Address:       "ตำบลเอกราช อำเภอป่าโมก",
			CheckInRadius: 120,
			Thumbnail:     "thumbnails/ang-thong-004.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-005",
			Name:          "วัดป่าโมกวรวิหาร",
			NameEn:        "Wat Pa Mok Worawihan",
			Description:   "Riverside royal temple housing a revered reclining Buddha said to have been moved to escape river erosion.",
			Coordinates:   models.Coordinates{Latitude: 14.4901, Longitude: 100.4419},
			Category:      "temple",
			Province:      "อ่างทอง",
			District:      "ป่าโมก",
			Address:       "ตำบลป่าโมก อำเภอป่าโมก",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/ang-thong-005.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-006",
			Name:          "พระตำหนักคำหยาด",
			NameEn:        "Kham Yat Palace",
			Description:   "Ruins of an 18th-century royal residence where King Uthumphon stayed after leaving the throne.",
			Coordinates:   models.Coordinates{Latitude: 14.6436, Longitude: 100.4042},
			Category:      "historical",
			Province:      "อ่างทอง",
			District:      "โพธิ์ทอง",
			Address:       "ตำบลคำหยาด อำเภอโพธิ์ทอง",
			CheckInRadius: 100,
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ang-thong-007",
			Name:          "ศูนย์ตุ๊กตาชาววังบ้านบางเสด็จ",
			NameEn:        "Bang Sadet Court Doll Center",
			Description:   "Craft center producing traditional Thai court dolls, founded under royal patronage.",
			Coordinates:   models.Coordinates{Latitude: 14.4672, Longitude: 100.4561},
			Category:      "culture",
			Province:      "อ่างทอง",
			District:      "ป่าโมก",
			Address:       "ตำบลบางเสด็จ อำเภอป่าโมก",
			CheckInRadius: 100,
			Thumbnail:     "thumbnails/ang-thong-007.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	return mustShard(shard.New("อ่างทอง", []string{"Ang Thong", "ang-thong", "angthong"}, records))
}
