package s3_test

import (
	"testing"

	"ehotels/config"
	"ehotels/infras/otel/mocks"
	"ehotels/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.ehotels.test/"
	cfg.External.S3.BucketName = "ehotels"

	store := s3.New(cfg, mocks.NewOtel())

	assert.Equal(t, "room/4f1c.png", store.ObjectKeyFromURL("https://cdn.ehotels.test/room/4f1c.png"))
	assert.Empty(t, store.ObjectKeyFromURL("https://elsewhere.test/room/4f1c.png"))
	assert.Empty(t, store.ObjectKeyFromURL(""))
}
