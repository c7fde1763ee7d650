package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Sound entry construction — .wav filtering, sibling icon resolution, ordering
// Expectation: every .wav produces exactly one entry; nothing else produces any.
// =============================================================================

func TestBuildSounds_OnlyWavFilesProduceEntries(t *testing.T) {
	names := []string{
		"kick.wav",
		"kick__icon.png",
		"readme.txt",
		"loop.mp3",
		"snare.wav",
		"snare.WAV", // extension match is case-sensitive, like the filesystem listing
	}

	entries := BuildSounds(names, "sounds/", "sounds/")
	require.Len(t, entries, 2)
	assert.Equal(t, "sounds/kick.wav", entries[0].Audio)
	assert.Equal(t, "sounds/snare.wav", entries[1].Audio)
}

func TestBuildSounds_IconPrefersPNGOverSVG(t *testing.T) {
	names := []string{
		"kick.wav",
		"kick__icon.png",
		"kick__icon.svg",
	}

	entries := BuildSounds(names, "sounds/", "sounds/")
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Icon)
	assert.Equal(t, "sounds/kick__icon.png", *entries[0].Icon)
}

func TestBuildSounds_IconFallsBackToSVG(t *testing.T) {
	names := []string{
		"hat.wav",
		"hat__icon.svg",
	}

	entries := BuildSounds(names, "sounds/", "sounds/")
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Icon)
	assert.Equal(t, "sounds/hat__icon.svg", *entries[0].Icon)
}

func TestBuildSounds_NoIconStaysNull(t *testing.T) {
	entries := BuildSounds([]string{"snare.wav"}, "sounds/", "sounds/")
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Icon)
}

func TestBuildSounds_IconPrefixIndependentOfAudioPrefix(t *testing.T) {
	// The composite variant references audio under sounds/ but icons under
	// assets/sounds/.
	names := []string{"kick.wav", "kick__icon.png"}

	entries := BuildSounds(names, "sounds/", "assets/sounds/")
	require.Len(t, entries, 1)
	assert.Equal(t, "sounds/kick.wav", entries[0].Audio)
	require.NotNil(t, entries[0].Icon)
	assert.Equal(t, "assets/sounds/kick__icon.png", *entries[0].Icon)
}

func TestBuildSounds_SortedForAnyInputOrder(t *testing.T) {
	perms := [][]string{
		{"c.wav", "a.wav", "b.wav"},
		{"a.wav", "b.wav", "c.wav"},
		{"b.wav", "c.wav", "a.wav"},
	}

	for _, names := range perms {
		entries := BuildSounds(names, "sounds/", "sounds/")
		require.Len(t, entries, 3)
		assert.Equal(t, "sounds/a.wav", entries[0].Audio)
		assert.Equal(t, "sounds/b.wav", entries[1].Audio)
		assert.Equal(t, "sounds/c.wav", entries[2].Audio)
	}
}

func TestBuildSounds_EmptyInputYieldsEmptySlice(t *testing.T) {
	entries := BuildSounds(nil, "sounds/", "sounds/")
	require.NotNil(t, entries, "empty manifest must encode as [], not null")
	assert.Empty(t, entries)
}
