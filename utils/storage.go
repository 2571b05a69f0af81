package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3-compatible object storage for listing images. Credentials and target
// come from the environment so deploys never bake keys into the binary.
type Storage struct {
	bucket   string
	endpoint string
	client   *s3.S3
}

func NewStorage(bucket, region, endpoint string) *Storage {
	cfg := &aws.Config{
		Region: aws.String(region),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "",
		),
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess := session.Must(session.NewSession(cfg))
	return &Storage{
		bucket:   bucket,
		endpoint: endpoint,
		client:   s3.New(sess),
	}
}

// UploadImage stores the file under folder/fileName and returns its public
// URL.
func (s *Storage) UploadImage(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String("image/jpeg"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, filePath), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, filePath), nil
}
