package seed

import (
	"time"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

// Artworks returns the sample catalog. Some entries reference artists that
// are not part of Artists(); lookups for them simply find nothing.
func Artworks() []models.Artwork {
	return []models.Artwork{
		{
			ID:          "1",
			Title:       "Serene Mountains",
			Description: "A beautiful landscape painting of mountains at sunset.",
			ImageURL:    "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       499,
			Tags:        []string{"Landscape", "Nature", "Mountains"},
			Artist:      "Jane Doe",
			ArtistID:    "sample-artist-1",
			CreatedAt:   utc(2023, time.October, 15, 14, 48),
		},
		{
			ID:          "2",
			Title:       "Abstract Emotions",
			Description: "An abstract expression of human emotions through vibrant colors.",
			ImageURL:    "https://images.pexels.com/photos/3246665/pexels-photo-3246665.png?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       750,
			Tags:        []string{"Abstract", "Contemporary", "Colorful"},
			Artist:      "John Smith",
			ArtistID:    "sample-artist-2",
			CreatedAt:   utc(2023, time.November, 3, 9, 22),
		},
		{
			ID:          "3",
			Title:       "Urban Perspective",
			Description: "A unique view of city life through geometric patterns.",
			ImageURL:    "https://images.pexels.com/photos/2693212/pexels-photo-2693212.png?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       625,
			Tags:        []string{"Urban", "Geometric", "Modern"},
			Artist:      "Alex Rivera",
			ArtistID:    "sample-artist-3",
			CreatedAt:   utc(2023, time.December, 22, 16, 35),
		},
		{
			ID:          "4",
			Title:       "Digital Dreams",
			Description: "A digital artwork exploring the boundaries between reality and imagination.",
			ImageURL:    "https://images.pexels.com/photos/2179483/pexels-photo-2179483.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       350,
			Tags:        []string{"Digital", "Fantasy", "Modern"},
			Artist:      "Sarah Chen",
			ArtistID:    "sample-artist-4",
			CreatedAt:   utc(2024, time.January, 10, 11, 15),
		},
		{
			ID:          "5",
			Title:       "Vintage Portrait",
			Description: "A classic portrait with a vintage aesthetic.",
			ImageURL:    "https://images.pexels.com/photos/4114534/pexels-photo-4114534.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       890,
			Tags:        []string{"Portrait", "Classic", "Vintage"},
			Artist:      "Michael Johnson",
			ArtistID:    "sample-artist-5",
			CreatedAt:   utc(2024, time.February, 5, 8, 40),
		},
		{
			ID:          "6",
			Title:       "Cosmic Odyssey",
			Description: "An exploration of cosmic themes and celestial bodies.",
			ImageURL:    "https://images.pexels.com/photos/1299391/pexels-photo-1299391.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Price:       575,
			Tags:        []string{"Space", "Abstract", "Cosmic"},
			Artist:      "Emily Wilson",
			ArtistID:    "sample-artist-6",
			CreatedAt:   utc(2024, time.March, 18, 19, 27),
		},
	}
}
