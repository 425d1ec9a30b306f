// Package sizes defines the rendition size value object shared by upload
// and validation code: a scale bucket (XXSM through XXLG), an orientation
// (thumbnail, landscape, portrait), and pixel dimensions.
package sizes
