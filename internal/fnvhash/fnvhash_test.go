package fnvhash

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reference uses hash/fnv's multiply-then-xor variant, which is the step the
// engines hashing these ids apply.
func reference(s string) uint32 {
	h := fnv.New32()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func TestSumMatchesReference(t *testing.T) {
	for _, name := range []string{"", "a", "abc", "play_music", "bgm_01"} {
		assert.Equal(t, reference(name), Sum(name), name)
	}
}

func TestSumLowercases(t *testing.T) {
	assert.Equal(t, Sum("play_music"), Sum("Play_Music"))
}

func TestEmptyIsOffsetBasis(t *testing.T) {
	assert.Equal(t, OffsetBasis, Sum(""))
}

func TestIncrementalMatchesForward(t *testing.T) {
	prefix, body, suffix := "play_", "mus", "ic"

	h := ExtendString(OffsetBasis, prefix)
	for i := 0; i < len(body); i++ {
		h = Extend(h, body[i])
	}

	assert.True(t, WithSuffix(h, suffix, Sum(prefix+body+suffix)))
	assert.False(t, WithSuffix(h, suffix, Sum(prefix+body)))
	assert.Equal(t, Sum(prefix+body), h, "WithSuffix must not mutate the running hash")
}
