package memory

import (
	"testing"
	"time"

	"mind-nest-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrisisResourceCache(t *testing.T) {
	c := NewCrisisResourceCache(time.Minute)

	_, found := c.Get("en")
	assert.False(t, found)

	resources := []*entity.CrisisResource{{Name: "A"}, {Name: "B"}}
	c.Set("en", resources)
	resources[0], resources[1] = resources[1], resources[0]

	got, found := c.Get("en")
	require.True(t, found)
	assert.Equal(t, "A", got[0].Name)

	got[0] = &entity.CrisisResource{Name: "changed"}
	again, _ := c.Get("en")
	assert.Equal(t, "A", again[0].Name)

	c.Flush()
	_, found = c.Get("en")
	assert.False(t, found)
}

func TestCrisisResourceCacheExpires(t *testing.T) {
	c := NewCrisisResourceCache(10 * time.Millisecond)
	c.Set("th", []*entity.CrisisResource{{Name: "สายด่วน"}})

	assert.Eventually(t, func() bool {
		_, found := c.Get("th")
		return !found
	}, time.Second, 5*time.Millisecond)
}
