package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

func TestInflightRegistry(t *testing.T) {
	r := newInflightRegistry()

	release, ok := r.acquire(models.OperationCreate, "0xabc")
	require.True(t, ok)

	_, ok = r.acquire(models.OperationCreate, "0xabc")
	assert.False(t, ok, "same class and key is rejected")

	otherKey, ok := r.acquire(models.OperationCreate, "0xdef")
	assert.True(t, ok, "another caller is not blocked")
	otherKey()

	otherClass, ok := r.acquire(models.OperationReveal, "0xabc")
	assert.True(t, ok, "another class is not blocked")
	otherClass()

	release()
	release()

	again, ok := r.acquire(models.OperationCreate, "0xabc")
	assert.True(t, ok)
	again()
	assert.Empty(t, r.running)
}
