package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("car.jpg"))
	assert.True(t, IsImageFile("CAR.PNG"))
	assert.False(t, IsImageFile("license.pdf"))
	assert.False(t, IsImageFile("noextension"))
}

func TestIsDocumentFile(t *testing.T) {
	assert.True(t, IsDocumentFile("license.pdf"))
	assert.True(t, IsDocumentFile("scan.jpeg"))
	assert.False(t, IsDocumentFile("notes.txt"))
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("car.JPG")
	b := GenerateUniqueFilename("car.JPG")

	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.NotEqual(t, a, b)
}

func TestGenerateTemporaryPassword(t *testing.T) {
	password := GenerateTemporaryPassword()
	assert.Len(t, password, TempPasswordLength)
	assert.NotEqual(t, password, GenerateTemporaryPassword())
}
