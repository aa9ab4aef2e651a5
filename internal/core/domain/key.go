package domain

const (
	versionHashLen = 8
	contentHashLen = 12
)

// RenderKey derives the cache tag for a render from the renderer's
// version hash and the model's content hash. Identical inputs always
// produce the identical tag; the outputs stored under it are assumed
// byte-for-byte interchangeable.
func RenderKey(versionHash, contentHash string) string {
	return truncate(versionHash, versionHashLen) + "-" + truncate(contentHash, contentHashLen)
}

// SliceKey derives the cache tag for a slice from the slicer's version
// hash, the hash of the local profile overrides and the mesh content hash.
func SliceKey(versionHash, profilesHash, contentHash string) string {
	return truncate(versionHash, versionHashLen) + "-" +
		truncate(profilesHash, versionHashLen) + "-" +
		truncate(contentHash, contentHashLen)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
