package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary initializes the image upload client
func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		GetEnv("CLOUDINARY_CLOUD_NAME"),
		GetEnv("CLOUDINARY_API_KEY"),
		GetEnv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
}
