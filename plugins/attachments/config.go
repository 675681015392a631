package attachments

const (
	ProviderS3  = "s3"
	ProviderGCS = "gcs"
)

type Config struct {
	// Provider is empty when uploads are disabled
	Provider      string `mapstructure:"provider" validate:"omitempty,oneof=s3 gcs"`
	Bucket        string `mapstructure:"bucket" validate:"required_with=Provider"`
	Prefix        string `mapstructure:"prefix" default:"comments"`
	PublicBaseURL string `mapstructure:"public_base_url" validate:"omitempty,url"`

	S3  S3Config  `mapstructure:"s3"`
	GCS GCSConfig `mapstructure:"gcs"`
}

// S3Config targets any S3 compatible endpoint, MinIO included.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint" validate:"required_if=Provider s3"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	UseSSL          bool   `mapstructure:"use_ssl" default:"true"`
}

type GCSConfig struct {
	// ServiceAccountKey is the base64 encoded service account json
	ServiceAccountKey string `mapstructure:"service_account_key"`
}
