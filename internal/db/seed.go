package db

import (
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/models"
)

// Seed inserts the starter roster and catalog once, on an empty database.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.Barber{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Barber{
			{
				Name:      "Michael Johnson",
				Specialty: "Classic Cuts & Traditional Styling",
				Bio:       "15 years of experience in traditional barbering. Specializes in classic cuts and hot towel shaves.",
				Phone:     "+1 (555) 123-4567",
				ImagePath: "uploads/profile.png",
			},
			{
				Name:      "David Martinez",
				Specialty: "Modern Styles & Fade Expert",
				Bio:       "Master of modern hairstyles and precision fades. Trained in latest cutting techniques.",
				Phone:     "+1 (555) 234-5678",
				ImagePath: "uploads/profile.png",
			},
			{
				Name:      "James Wilson",
				Specialty: "Beard Specialist",
				Bio:       "Dedicated beard grooming expert with 10 years experience. Certified in advanced beard styling.",
				Phone:     "+1 (555) 345-6789",
				ImagePath: "uploads/profile.png",
			},
			{
				Name:      "Robert Garcia",
				Specialty: "All-Around Professional",
				Bio:       "Versatile barber skilled in all services. Known for attention to detail and customer satisfaction.",
				Phone:     "+1 (555) 456-7890",
				ImagePath: "uploads/profile.png",
			},
		})
	}

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Service{
			{
				Name:        "Classic Haircut",
				Description: "Traditional men's haircut with styling and finished with hot towel",
				Price:       25.00,
				DurationMin: 30,
				ImagePath:   "uploads/default.png",
			},
			{
				Name:        "Beard Trim & Shape",
				Description: "Professional beard trimming and shaping with hot towel treatment",
				Price:       15.00,
				DurationMin: 20,
				ImagePath:   "uploads/default.png",
			},
			{
				Name:        "Haircut & Beard Combo",
				Description: "Complete grooming package with haircut and beard trim",
				Price:       35.00,
				DurationMin: 45,
				ImagePath:   "uploads/default.png",
			},
			{
				Name:        "Hot Towel Shave",
				Description: "Traditional straight razor shave with hot towel treatment",
				Price:       30.00,
				DurationMin: 30,
				ImagePath:   "uploads/default.png",
			},
		})
	}
}
