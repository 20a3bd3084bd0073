package seed

import (
	"time"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

// Artists returns the sample artist profiles. They are not linked to any
// directory user.
func Artists() []models.Artist {
	return []models.Artist{
		{
			ID:          "sample-artist-1",
			Name:        "Jane Doe",
			Bio:         "Jane Doe is a contemporary artist known for her vibrant landscapes and abstract interpretations of nature. Her work has been featured in numerous galleries across Europe and North America.",
			Location:    "New York, USA",
			Birthplace:  "London, UK",
			Experience:  "With over 15 years of professional experience, Jane has developed a unique style that combines traditional techniques with modern perspectives. She has received multiple awards for her contributions to contemporary art.",
			ImageURL:    "https://images.pexels.com/photos/3585075/pexels-photo-3585075.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Specialties: []string{"Landscape", "Abstract", "Oil Painting"},
			JoinedDate:  utc(2020, time.March, 15, 0, 0),
		},
		{
			ID:          "sample-artist-2",
			Name:        "John Smith",
			Bio:         "John Smith is a digital artist and illustrator who pushes the boundaries of digital art. His work explores the intersection of technology and traditional artistic expression.",
			Location:    "San Francisco, USA",
			Birthplace:  "Toronto, Canada",
			Experience:  "A pioneer in digital art with 10 years of experience, John has collaborated with major tech companies and has been featured in digital art exhibitions worldwide.",
			ImageURL:    "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Specialties: []string{"Digital Art", "Illustration", "Contemporary"},
			JoinedDate:  utc(2021, time.January, 20, 0, 0),
		},
		{
			ID:          "sample-artist-3",
			Name:        "Alex Rivera",
			Bio:         "Alex Rivera is a mixed-media artist whose work challenges conventional perspectives on urban life and society. Their art often incorporates elements of street art and classical techniques.",
			Location:    "Berlin, Germany",
			Birthplace:  "Mexico City, Mexico",
			Experience:  "With a background in both classical art and street art, Alex has spent 8 years developing a unique style that bridges multiple artistic traditions.",
			ImageURL:    "https://images.pexels.com/photos/3778876/pexels-photo-3778876.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Specialties: []string{"Mixed Media", "Urban", "Street Art"},
			JoinedDate:  utc(2022, time.June, 10, 0, 0),
		},
	}
}
