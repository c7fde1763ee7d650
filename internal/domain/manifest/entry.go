// Package manifest builds the JSON documents that enumerate the audio assets.
// All logic here is deterministic: the same set of input filenames always
// produces byte-identical output, so generated manifests diff cleanly in
// version control.
package manifest

// Filename conventions. A sound's icon shares its base name with the sound
// file, e.g. kick.wav -> kick__icon.png.
const (
	soundExt   = ".wav"
	backingExt = ".mp3"
	iconInfix  = "__icon."
)

// iconExts is the fixed resolution order for sibling icons. png wins when
// both exist.
var iconExts = []string{"png", "svg"}

// SoundEntry describes one playable sound and its optional sibling icon.
// Icon is null in the output when no icon file exists.
type SoundEntry struct {
	Audio string  `json:"audio"`
	Icon  *string `json:"icon"`
}

// BackingTrackEntry describes one backing track. Duration is null in the
// output when the file's frames could not be decoded.
type BackingTrackEntry struct {
	Audio    string   `json:"audio"`
	Duration *float64 `json:"duration"`
}

// AudioMap is the composite manifest document.
type AudioMap struct {
	BackingTracks []BackingTrackEntry `json:"backing_tracks"`
	Sounds        []SoundEntry        `json:"sounds"`
}
