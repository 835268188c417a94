package codec

import (
	exif "github.com/dsoprea/go-exif/v3"
)

// CountExifTags returns the number of EXIF tags embedded in the file at
// path. Re-encoding drops them all, so this is also the number of metadata
// entries the transform removes. Best effort: any read or parse failure,
// including "no EXIF present", counts as zero.
func CountExifTags(path string) int {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return 0
	}
	tags, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return 0
	}
	return len(tags)
}
