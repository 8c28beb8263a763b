// Package pixel implements the packed color formats that e-paper frame sources hand to the
// ink conversions: 1-bit monochrome and 15- and 16-bit packed RGB.
//
// All colors implement Go's native [color.Color] interface and come with a matching
// [color.Model].
package pixel
