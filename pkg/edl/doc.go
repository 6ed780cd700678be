// Package edl writes EDM display files for the generated feature records.
//
// The features screen shows one bordered box per structure.Section and one
// row per feature: a help button, the feature name and a control chosen by
// the feature type. Boxes are stacked top to bottom and start a new column
// when a page would grow past pageLimit pixels.
//
// The summary screen embeds the areaDetector base screen and the camera
// screen and links to the features screen. It is only written when it does
// not exist yet, so local edits survive regeneration.
package edl
