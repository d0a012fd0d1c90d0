package audio

// codecExtensions maps ffprobe codec names to their conventional file extensions.
var codecExtensions = map[string]string{
	"aac":       ".m4a",
	"mp3":       ".mp3",
	"opus":      ".opus",
	"vorbis":    ".ogg",
	"flac":      ".flac",
	"pcm_s16le": ".wav",
	"pcm_s24le": ".wav",
	"pcm_s32le": ".wav",
	"alac":      ".m4a",
	"ac3":       ".ac3",
	"eac3":      ".eac3",
	"dts":       ".dts",
	"truehd":    ".thd",
}

// ExtensionForCodec returns the conventional file extension (with leading dot)
// for an audio codec name. Codecs without a conventional container fall back
// to Matroska audio (.mka), which can hold any stream.
func ExtensionForCodec(codec string) string {
	if ext, ok := codecExtensions[codec]; ok {
		return ext
	}
	return ".mka"
}
