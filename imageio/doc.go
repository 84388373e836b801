// Package imageio moves 2-D arrays between image files and the labeling
// packages.
//
// What:
//
//   - Load / Save: image files through github.com/disintegration/imaging
//     (format chosen by extension, EXIF orientation applied on load).
//   - Binarize: luminance threshold through github.com/anthonynsimon/bild,
//     giving a Height×Width uint8 array with 1 for foreground.
//   - MaskImage: a boolean mask as a black/white *image.Gray.
//   - Colorize: a label map as an *image.NRGBA, one colour per label from a
//     deterministic github.com/lucasb-eyer/go-colorful palette, background black.
//
// Arrays are indexed [y, x]: shape (Height, Width), row-major.
package imageio
