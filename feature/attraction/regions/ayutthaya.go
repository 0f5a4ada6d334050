package regions

import (
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/shard"
)

// Ayutthaya returns the shard for Phra Nakhon Si Ayutthaya province
// (พระนครศรีอยุธยา). The short English name is registered as an extra alias
// because callers rarely spell out the full province name.
func Ayutthaya() *shard.Shard {
	records := []models.AttractionRecord{
		{
			ID:            "ayutthaya-001",
			Name:          "วัดมหาธาตุ",
			NameEn:        "Wat Mahathat",
			Description:   "Ruined 14th-century royal monastery, known for the Buddha head entwined in banyan tree roots.",
			Coordinates:   models.Coordinates{Latitude: 14.3570, Longitude: 100.5678},
			Category:      "historical",
			Categories:    []string{"historical", "temple"},
			Province:      "พระนครศรีอยุธยา",
			District:      "พระนครศรีอยุธยา",
			Address:       "ตำบลท่าวาสุกรี อำเภอพระนครศรีอยุธยา",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/ayutthaya-001.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ayutthaya-002",
			Name:          "วัดพระศรีสรรเพชญ์",
			NameEn:        "Wat Phra Si Sanphet",
			Description:   "The holiest temple of the old royal palace, with three iconic restored chedis.",
			Coordinates:   models.Coordinates{Latitude: 14.3559, Longitude: 100.5586},
			Category:      "historical",
			Categories:    []string{"historical", "temple"},
			Province:      "พระนครศรีอยุธยา",
			District:      "พระนครศรีอยุธยา",
			Address:       "ตำบลประตูชัย อำเภอพระนครศรีอยุธยา",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/ayutthaya-002.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ayutthaya-003",
			Name:          "ตลาดน้ำอโยธยา",
			NameEn:        "Ayothaya Floating Market",
			Description:   "Floating market with boat vendors and cultural performances; closed after the 2023 fire.",
			Coordinates:   models.Coordinates{Latitude: 14.3635, Longitude: 100.5908},
			Category:      "market",
			Province:      "พระนครศรีอยุธยา",
			District:      "พระนครศรีอยุธยา",
			Address:       "ตำบลไผ่ลิง อำเภอพระนครศรีอยุธยา",
			CheckInRadius: 150,
			Thumbnail:     "thumbnails/ayutthaya-003.jpg",
			IsActive:      false,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
		{
			ID:            "ayutthaya-004",
			Name:          "วัดไชยวัฒนาราม",
			NameEn:        "Wat Chaiwatthanaram",
			Description:   "Riverside temple built by King Prasat Thong in 1630, modeled after Angkor Wat.",
			Coordinates:   models.Coordinates{Latitude: 14.3434, Longitude: 100.5414},
			Category:      "historical",
			Categories:    []string{"historical", "temple"},
			Province:      "พระนครศรีอยุธยา",
			District:      "พระนครศรีอยุธยา",
			Address:       "ตำบลบ้านป้อม อำเภอพระนครศรีอยุธยา",
			CheckInRadius: 200,
			Thumbnail:     "thumbnails/ayutthaya-004.jpg",
			IsActive:      true,
			CreatedAt:     declaredAt,
			UpdatedAt:     declaredAt,
		},
	}

	aliases := []string{
		"Phra Nakhon Si Ayutthaya",
		"phra-nakhon-si-ayutthaya",
		"phranakhonsiayutthaya",
		"Ayutthaya",
	}

	return mustShard(shard.New("พระนครศรีอยุธยา", aliases, records))
}
