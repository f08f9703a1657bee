package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string
	PublicBaseURL   string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
	StagingFolder    string
	AlbumFolder      string

	MaxUploadBytes int64
	TargetSizeKB   int
	StartQuality   int
	QualityStep    int
	QualityFloor   int
	MaxAttempts    int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		CloudinaryCloud:  getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinarySecret: getEnv("CLOUDINARY_API_SECRET", ""),
		StagingFolder:    getEnv("CLOUDINARY_STAGING_FOLDER", "staging"),
		AlbumFolder:      getEnv("CLOUDINARY_ALBUM_FOLDER", "albums"),

		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		TargetSizeKB:   1024,
		StartQuality:   85,
		QualityStep:    10,
		QualityFloor:   70,
		MaxAttempts:    4,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
