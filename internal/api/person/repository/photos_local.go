package personRepository

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LocalPhotoStore writes one reference JPEG per person under the data
// directory, the local-mode counterpart of the S3 bucket.
type LocalPhotoStore struct {
	dir string
	log *logrus.Logger
}

func NewLocalPhotoStore(dataDir string, log *logrus.Logger) *LocalPhotoStore {
	return &LocalPhotoStore{
		dir: filepath.Join(dataDir, "photos"),
		log: log,
	}
}

func (s *LocalPhotoStore) SavePhoto(name string, jpegData []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := s.photoPath(name)
	if err := os.WriteFile(path, jpegData, 0o644); err != nil {
		s.log.Errorf("Failed to write photo for %s: %v", name, err)
		return "", err
	}

	return path, nil
}

func (s *LocalPhotoStore) RemovePhoto(name string) error {
	err := os.Remove(s.photoPath(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalPhotoStore) photoPath(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	return filepath.Join(s.dir, slug+".jpg")
}
